package models

import "fmt"

// Form holds the values of one in-progress prediction form together with
// the errors found by the last submit attempt.
type Form struct {
	Values PredictionRequest
	Errors ValidationErrors
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{Errors: ValidationErrors{}}
}

// Set overwrites exactly one field. Nothing is validated here.
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldFrequencyOfCommunication:
		f.Values.FrequencyOfCommunication = value
	case FieldHelpInCrises:
		f.Values.HelpInCrises = value
	case FieldFinancialSupportProvided:
		f.Values.FinancialSupportProvided = value
	case FieldAttendanceAtEvents:
		f.Values.AttendanceAtEvents = value
	case FieldSentimentScore:
		f.Values.SentimentScore = value
	case FieldRelationshipName:
		f.Values.RelationshipName = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// Get returns the raw value of a field, or "" for an unknown field.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldFrequencyOfCommunication:
		return f.Values.FrequencyOfCommunication
	case FieldHelpInCrises:
		return f.Values.HelpInCrises
	case FieldFinancialSupportProvided:
		return f.Values.FinancialSupportProvided
	case FieldAttendanceAtEvents:
		return f.Values.AttendanceAtEvents
	case FieldSentimentScore:
		return f.Values.SentimentScore
	case FieldRelationshipName:
		return f.Values.RelationshipName
	}
	return ""
}

// Error returns the validation message stored for a field, if any.
func (f *Form) Error(field Field) string {
	return f.Errors[field]
}

// Reset empties every field and clears the error set.
func (f *Form) Reset() {
	f.Values = PredictionRequest{}
	f.Errors = ValidationErrors{}
}
