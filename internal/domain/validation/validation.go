// Package validation checks record lists field by field and reports errors
// keyed the way the host backend reports them ("educations.0.start_date").
package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/variant"
)

// FieldErrors maps a field path to its messages.
type FieldErrors map[string][]string

// Count returns the total number of messages.
func (fe FieldErrors) Count() int {
	n := 0
	for _, msgs := range fe {
		n += len(msgs)
	}
	return n
}

// form is the validated view of a record.
type form struct {
	PrimaryLabel string `validate:"required"`
	LevelLabel   string `validate:"required"`
	StartDate    string `validate:"required,partialdate,notfuture"`
	EndDate      string `validate:"omitempty,partialdate"`
}

type nowKey struct{}

// Validator validates record lists. Safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the date rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("partialdate", func(fl validator.FieldLevel) bool {
		_, ok := calendar.Parse(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidationCtx("notfuture", func(ctx context.Context, fl validator.FieldLevel) bool {
		t, ok := calendar.Parse(fl.Field().String())
		if !ok {
			return true
		}
		now, _ := ctx.Value(nowKey{}).(time.Time)
		return now.IsZero() || !t.After(calendar.Local(now))
	})
	v.RegisterStructValidation(endNotBeforeStart, form{})
	return &Validator{validate: v}
}

func endNotBeforeStart(sl validator.StructLevel) {
	f := sl.Current().Interface().(form)
	start, okStart := calendar.Parse(f.StartDate)
	end, okEnd := calendar.Parse(f.EndDate)
	if okStart && okEnd && end.Before(start) {
		sl.ReportError(f.EndDate, "EndDate", "EndDate", "afterstart", "")
	}
}

// Validate checks every record and returns the errors, empty when all are valid.
func (v *Validator) Validate(ctx context.Context, vr variant.Variant, records []model.Record, now time.Time) FieldErrors {
	ctx = context.WithValue(ctx, nowKey{}, now)
	out := FieldErrors{}
	for i, r := range records {
		err := v.validate.StructCtx(ctx, form{
			PrimaryLabel: strings.TrimSpace(r.PrimaryLabel),
			LevelLabel:   strings.TrimSpace(r.LevelLabel),
			StartDate:    strings.TrimSpace(r.StartDate),
			EndDate:      strings.TrimSpace(r.EndDate),
		})
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			continue
		}
		for _, fe := range verrs {
			name := vr.FieldName(fe.StructField())
			key := fmt.Sprintf("%s.%d.%s", vr.Collection, i, name)
			out[key] = append(out[key], message(fe.Tag(), name))
		}
	}
	return out
}

func message(tag, field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "partialdate":
		return fmt.Sprintf("The %s must be a valid date (YYYY-MM or YYYY-MM-DD).", label)
	case "notfuture":
		return fmt.Sprintf("The %s must not be in the future.", label)
	case "afterstart":
		return fmt.Sprintf("The %s must be a date after or equal to the start date.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}
