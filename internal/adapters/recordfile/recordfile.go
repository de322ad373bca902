// Package recordfile loads record lists from YAML or JSON files.
package recordfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/careerlens/internal/domain/types"
)

// Errors returned by the loader.
var (
	ErrReadFile = errors.New("read record file")
	ErrFormat   = errors.New("unsupported record file layout")
)

// Load reads path. The document is either a bare list of records or a
// mapping holding the list under collection (e.g. "educations").
func Load(path, collection string) ([]types.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f, collection)
}

// Decode reads one YAML or JSON document from r.
func Decode(r io.Reader, collection string) ([]types.RawRecord, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []types.RawRecord{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	var list []any
	switch v := doc.(type) {
	case nil:
		return []types.RawRecord{}, nil
	case []any:
		list = v
	case map[string]any:
		inner, ok := v[collection]
		if !ok {
			return nil, fmt.Errorf("%w: no %q key", ErrFormat, collection)
		}
		if inner == nil {
			return []types.RawRecord{}, nil
		}
		if list, ok = inner.([]any); !ok {
			return nil, fmt.Errorf("%w: %q is not a list", ErrFormat, collection)
		}
	default:
		return nil, fmt.Errorf("%w: top level is %T", ErrFormat, doc)
	}

	out := make([]types.RawRecord, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is not a mapping", ErrFormat, i)
		}
		out = append(out, m)
	}
	return out, nil
}
