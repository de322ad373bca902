package timeline

import "strings"

// Unknown is the level of a label that matches no vocabulary entry.
const Unknown = -1

// Level is one rung of an ordered classification, e.g. "Bachelor" or "senior".
type Level struct {
	Name    string   `koanf:"name" yaml:"name" json:"name"`
	Aliases []string `koanf:"aliases" yaml:"aliases" json:"aliases,omitempty"`
}

// Vocabulary is an ordered list of levels, lowest first.
type Vocabulary []Level

// Names builds a vocabulary without aliases.
func Names(names ...string) Vocabulary {
	v := make(Vocabulary, 0, len(names))
	for _, n := range names {
		v = append(v, Level{Name: n})
	}
	return v
}

// Classify returns the position of the first level whose name is a
// case-insensitive substring of label. Aliases are tried only when no name
// matches, so "Senior Engineer" is senior even if "engineer" aliases a lower rung.
func (v Vocabulary) Classify(label string) int {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return Unknown
	}
	for i, lvl := range v {
		if matches(label, lvl.Name) {
			return i
		}
	}
	for i, lvl := range v {
		for _, alias := range lvl.Aliases {
			if matches(label, alias) {
				return i
			}
		}
	}
	return Unknown
}

func matches(label, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	return term != "" && strings.Contains(label, term)
}

// ClassifyLevel classifies label against an ordered list of level names.
func ClassifyLevel(label string, orderedLevelNames []string) int {
	return Names(orderedLevelNames...).Classify(label)
}
