package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the single message shown for each failing field,
// whatever rule it broke.
var fieldMessages = map[models.Field]string{
	models.FieldFrequencyOfCommunication: "Frequency of Communication must be a positive number.",
	models.FieldHelpInCrises:             "Help in Crises must be a positive number.",
	models.FieldFinancialSupportProvided: "Financial Support Provided must be a positive number.",
	models.FieldAttendanceAtEvents:       "Attendance at Events must be a percentage (0-100).",
	models.FieldSentimentScore:           "Sentiment Score must be between 1 and 10.",
	models.FieldRelationshipName:         "Relationship Name cannot be empty.",
}

// FieldMessage returns the validation message for a field.
func FieldMessage(field models.Field) string {
	return fieldMessages[field]
}

type Validator interface {
	Validate(req models.PredictionRequest) models.ValidationErrors
}

type formValidator struct {
	validate *validator.Validate
}

// NewValidator builds a validator with the numeric and text rules used by
// the prediction form registered on it.
func NewValidator() (Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so errors map straight onto models.Field.
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"notblank": isNotBlank,
		"realnum":  isRealNumber,
		"num_gt":   compareNumber(func(v, bound float64) bool { return v > bound }),
		"num_gte":  compareNumber(func(v, bound float64) bool { return v >= bound }),
		"num_lte":  compareNumber(func(v, bound float64) bool { return v <= bound }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s rule: %w", tag, err)
		}
	}

	return &formValidator{validate: v}, nil
}

// Validate checks every field independently and returns one message per
// failing field. An empty map means the record may be submitted.
func (fv *formValidator) Validate(req models.PredictionRequest) models.ValidationErrors {
	result := models.ValidationErrors{}

	err := fv.validate.Struct(req)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable on programmer error; block every field so nothing is sent.
		for _, field := range models.Fields {
			result[field] = fieldMessages[field]
		}
		return result
	}

	for _, fe := range fieldErrs {
		field := models.Field(fe.Field())
		if msg, ok := fieldMessages[field]; ok {
			result[field] = msg
		}
	}
	return result
}

// ParseNumber reads a form value as a finite decimal number. Surrounding
// whitespace is ignored; base prefixes and digit separators are not numbers.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsRune(raw, '_') || hasBasePrefix(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func hasBasePrefix(raw string) bool {
	raw = strings.TrimLeft(raw, "+-")
	if len(raw) < 2 || raw[0] != '0' {
		return false
	}
	switch raw[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isRealNumber(fl validator.FieldLevel) bool {
	_, ok := ParseNumber(fl.Field().String())
	return ok
}

func compareNumber(cmp func(v, bound float64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		bound, err := strconv.ParseFloat(fl.Param(), 64)
		if err != nil {
			return false
		}
		v, ok := ParseNumber(fl.Field().String())
		return ok && cmp(v, bound)
	}
}
