// Package dedupe detects records that are near-identical by a composite key.
package dedupe

import (
	"fmt"
	"strings"

	"github.com/okian/careerlens/internal/domain/model"
)

// MissingDate stands in for a blank start date in the composite key.
const MissingDate = "<no-date>"

// KeyFunc builds the composite key for a record. ok=false excludes the
// record from duplicate detection.
type KeyFunc func(r model.Record) (key string, ok bool)

// Detector groups records by key and reports every repeat occurrence.
type Detector struct {
	key KeyFunc
}

// New creates a Detector. Without options records are keyed by
// institution/company, degree/position and start date.
func New(opts ...Option) *Detector {
	d := &Detector{key: CompositeKey}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect is a convenience for New().Detect(records).
func Detect(records []model.Record) []model.Finding {
	return New().Detect(records)
}

// Detect returns one finding per record whose key was already taken by an
// earlier record. The finding references (first occurrence, repeat).
func (d *Detector) Detect(records []model.Record) []model.Finding {
	seen := newIndex(len(records))
	findings := []model.Finding{}
	for i, r := range records {
		key, ok := d.key(r)
		if !ok {
			continue
		}
		first, dup := seen.seenAndRecord(key, i)
		if !dup {
			continue
		}
		findings = append(findings, model.Finding{
			Kind:    model.FindingDuplicate,
			Indices: []int{first, i},
			Message: fmt.Sprintf("record %d duplicates record %d", i+1, first+1),
		})
	}
	return findings
}

// CompositeKey is the default KeyFunc: lowercase-trimmed primary label,
// level label and start date. Records missing either label are skipped.
func CompositeKey(r model.Record) (string, bool) {
	primary := normalize(r.PrimaryLabel)
	level := normalize(r.LevelLabel)
	if primary == "" || level == "" {
		return "", false
	}
	start := normalize(r.StartDate)
	if start == "" {
		start = MissingDate
	}
	return primary + "\x1f" + level + "\x1f" + start, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// index remembers the first position each key was seen at.
type index struct {
	first map[string]int
}

func newIndex(size int) *index {
	return &index{first: make(map[string]int, size)}
}

// seenAndRecord reports whether key was seen before, returning the first
// position. Unseen keys are recorded at position i.
func (ix *index) seenAndRecord(key string, i int) (int, bool) {
	if first, ok := ix.first[key]; ok {
		return first, true
	}
	ix.first[key] = i
	return i, false
}
