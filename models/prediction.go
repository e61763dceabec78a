package models

// Field identifies one input of the prediction form. The value is the wire
// name used in form posts, JSON bodies and error maps.
type Field string

const (
	FieldFrequencyOfCommunication Field = "Frequency_of_Communication"
	FieldHelpInCrises             Field = "Help_in_Crises"
	FieldFinancialSupportProvided Field = "Financial_Support_Provided"
	FieldAttendanceAtEvents       Field = "Attendance_at_Events"
	FieldSentimentScore           Field = "Sentiment_Score"
	FieldRelationshipName         Field = "Relationship_Name"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldFrequencyOfCommunication,
	FieldHelpInCrises,
	FieldFinancialSupportProvided,
	FieldAttendanceAtEvents,
	FieldSentimentScore,
	FieldRelationshipName,
}

// Valid reports whether f is one of the known form fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Numeric reports whether the field holds a number.
func (f Field) Numeric() bool {
	return f.Valid() && f != FieldRelationshipName
}

// PredictionRequest is the record sent to the remote predictor. Every value
// is kept as the raw text the user typed.
type PredictionRequest struct {
	FrequencyOfCommunication string `json:"Frequency_of_Communication" form:"Frequency_of_Communication" validate:"realnum,num_gt=0"`
	HelpInCrises             string `json:"Help_in_Crises" form:"Help_in_Crises" validate:"realnum,num_gt=0"`
	FinancialSupportProvided string `json:"Financial_Support_Provided" form:"Financial_Support_Provided" validate:"realnum,num_gt=0"`
	AttendanceAtEvents       string `json:"Attendance_at_Events" form:"Attendance_at_Events" validate:"realnum,num_gte=0,num_lte=100"`
	SentimentScore           string `json:"Sentiment_Score" form:"Sentiment_Score" validate:"realnum,num_gte=1,num_lte=10"`
	RelationshipName         string `json:"Relationship_Name" form:"Relationship_Name" validate:"notblank"`
}

// ValidationErrors maps each failing field to a human readable message. A
// missing key means the field is valid.
type ValidationErrors map[Field]string

// PredictorResponse is the body returned by the remote predictor.
type PredictorResponse struct {
	LoyaltyScore *float64 `json:"loyalty_score"`
}

// PredictResponse is the data payload of a successful JSON API submission.
type PredictResponse struct {
	SubmissionID     string  `json:"submission_id"`
	RelationshipName string  `json:"relationship_name"`
	LoyaltyScore     float64 `json:"loyalty_score"`
	Band             string  `json:"band"`
	Severity         string  `json:"severity"`
	Message          string  `json:"message"`
	ResetAfterMillis int64   `json:"reset_after_ms"`
}
