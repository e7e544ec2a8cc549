package inputs

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// FieldError is one rejected input.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Limit string `json:"limit,omitempty"`
	Value any    `json:"value,omitempty"`
}

// ValidationError lists every input that is missing, unparseable or out of range.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Limit != "" {
			parts = append(parts, fmt.Sprintf("%s must be %s %s", f.Field, ruleText(f.Rule), f.Limit))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", f.Field, ruleText(f.Rule)))
	}
	return "invalid inputs: " + strings.Join(parts, "; ")
}

func ruleText(rule string) string {
	switch rule {
	case "gte":
		return ">="
	case "lte":
		return "<="
	case "number":
		return "not a number"
	default:
		return rule
	}
}

// Validator enforces the documented range of every field.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns a *ValidationError when any field is outside its range.
// NaN and infinities fail both bounds.
func (val *Validator) Validate(in models.Inputs) error {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Limit: fe.Param(),
			Value: jsonSafe(fe.Value()),
		})
	}
	return out
}

// jsonSafe keeps NaN/Inf out of error payloads.
func jsonSafe(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return v
}
