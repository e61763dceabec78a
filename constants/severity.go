package constants

// SeverityEnum is the level a toast is rendered with.
type SeverityEnum string

const (
	SeveritySuccess SeverityEnum = "success"
	SeverityWarning SeverityEnum = "warning"
	SeverityError   SeverityEnum = "error"
	SeverityInfo    SeverityEnum = "info"
)

const (
	// GenericPredictionFailure is shown for every transport or remote failure.
	GenericPredictionFailure = "Error predicting loyalty score. Please try again."

	DefaultPredictorURL = "http://127.0.0.1:5000/predict"
)
