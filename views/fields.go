package views

import "github.com/Bipul-Dubey/loyalty-predictor/models"

// FieldView is how one form input is presented.
type FieldView struct {
	Field       models.Field
	Label       string
	Placeholder string
	Note        string
	InputType   string
}

// FormFields is the presentation of every input, in display order.
var FormFields = []FieldView{
	{
		Field:       models.FieldFrequencyOfCommunication,
		Label:       "Please enter the Communication Frequency.",
		Placeholder: "Communication Frequency",
		Note:        "If communication happens once a week, enter the matching number of contacts.",
		InputType:   "number",
	},
	{
		Field:       models.FieldHelpInCrises,
		Label:       "Please enter the amount of Help provided in Crises.",
		Placeholder: "Help in Crises",
		Note:        "Enter the number of times help was provided.",
		InputType:   "number",
	},
	{
		Field:       models.FieldFinancialSupportProvided,
		Label:       "Please enter the Financial Support Provided.",
		Placeholder: "Financial Support Provided",
		Note:        "Enter the amount of financial support provided.",
		InputType:   "number",
	},
	{
		Field:       models.FieldAttendanceAtEvents,
		Label:       "Please enter the Attendance at Events as a percentage (0-100).",
		Placeholder: "Attendance at Events (%)",
		Note:        "If half of the events were attended, enter 50.",
		InputType:   "number",
	},
	{
		Field:       models.FieldSentimentScore,
		Label:       "Please enter the Sentiment Score between 1 and 10.",
		Placeholder: "Sentiment Score (1-10)",
		Note:        "1 is negative, 10 is positive. A neutral sentiment is 5.",
		InputType:   "number",
	},
	{
		Field:       models.FieldRelationshipName,
		Label:       "Please enter the Relationship Name",
		Placeholder: "Relationship Name",
		Note:        "The relationship name cannot be empty.",
		InputType:   "text",
	},
}
