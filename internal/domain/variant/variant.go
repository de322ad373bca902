// Package variant adapts the education and experience form shapes to the
// generic record model, and carries each variant's default vocabularies.
package variant

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/stats"
	"github.com/okian/careerlens/internal/domain/timeline"
)

// Default thresholds shared by both variants.
const (
	DefaultMaxGapMonths        = 6
	DefaultRegressionTolerance = 2
)

// FieldMap names the form fields that feed each generic record field.
type FieldMap struct {
	ID        string
	Primary   string
	Level     string
	Secondary string
	Notes     string
	Start     string
	End       string
}

// Variant describes one profile form.
type Variant struct {
	Domain     model.Domain
	Collection string // request body key holding the record list
	Noun       string // singular, for messages
	Fields     FieldMap
	Levels     timeline.Vocabulary
	Categories []stats.Category
}

// Education is the education history form.
func Education() Variant {
	return Variant{
		Domain:     model.DomainEducation,
		Collection: "educations",
		Noun:       "education",
		Fields: FieldMap{
			ID:        "id",
			Primary:   "institution",
			Level:     "degree",
			Secondary: "subject",
			Notes:     "grade",
			Start:     "start_date",
			End:       "end_date",
		},
		Levels:     educationLevels(),
		Categories: studyFields(),
	}
}

// Experience is the work experience form.
func Experience() Variant {
	return Variant{
		Domain:     model.DomainExperience,
		Collection: "experiences",
		Noun:       "experience",
		Fields: FieldMap{
			ID:        "id",
			Primary:   "company_name",
			Level:     "job_position",
			Secondary: "location",
			Notes:     "description",
			Start:     "start_date",
			End:       "end_date",
		},
		Levels:     seniorityLevels(),
		Categories: industries(),
	}
}

// All returns every known variant.
func All() []Variant {
	return []Variant{Education(), Experience()}
}

// Lookup finds a variant by domain name, case-insensitively.
func Lookup(domain string) (Variant, bool) {
	d := model.Domain(strings.ToLower(strings.TrimSpace(domain)))
	for _, v := range All() {
		if v.Domain == d {
			return v, true
		}
	}
	return Variant{}, false
}

// Decode maps one raw form object onto a Record. Missing fields are blank;
// numbers and timestamps are rendered as strings.
func (v Variant) Decode(raw map[string]any) model.Record {
	f := v.Fields
	return model.Record{
		ID:             text(raw[f.ID]),
		StartDate:      text(raw[f.Start]),
		EndDate:        text(raw[f.End]),
		PrimaryLabel:   text(raw[f.Primary]),
		LevelLabel:     text(raw[f.Level]),
		SecondaryLabel: text(raw[f.Secondary]),
		Notes:          text(raw[f.Notes]),
	}
}

// DecodeAll decodes a list, keeping positions so findings map back to the form rows.
func (v Variant) DecodeAll(raws []map[string]any) []model.Record {
	out := make([]model.Record, len(raws))
	for i, raw := range raws {
		out[i] = v.Decode(raw)
	}
	return out
}

// FieldName returns the form field name for a generic record field name
// (as used in model.Record's Go field names).
func (v Variant) FieldName(recordField string) string {
	switch recordField {
	case "ID":
		return v.Fields.ID
	case "StartDate":
		return v.Fields.Start
	case "EndDate":
		return v.Fields.End
	case "PrimaryLabel":
		return v.Fields.Primary
	case "LevelLabel":
		return v.Fields.Level
	case "SecondaryLabel":
		return v.Fields.Secondary
	case "Notes":
		return v.Fields.Notes
	}
	return recordField
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format("2006-01-02")
	default:
		return ""
	}
}
