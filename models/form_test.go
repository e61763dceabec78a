package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSetOverwritesOnlyOneField(t *testing.T) {
	form := NewForm()
	for i, field := range Fields {
		require.NoError(t, form.Set(field, string(rune('a'+i))))
	}

	require.NoError(t, form.Set(FieldSentimentScore, "7"))

	assert.Equal(t, "a", form.Get(FieldFrequencyOfCommunication))
	assert.Equal(t, "b", form.Get(FieldHelpInCrises))
	assert.Equal(t, "c", form.Get(FieldFinancialSupportProvided))
	assert.Equal(t, "d", form.Get(FieldAttendanceAtEvents))
	assert.Equal(t, "7", form.Get(FieldSentimentScore))
	assert.Equal(t, "f", form.Get(FieldRelationshipName))
}

func TestFormSetUnknownField(t *testing.T) {
	form := NewForm()
	err := form.Set(Field("Favourite_Colour"), "blue")
	require.Error(t, err)
	assert.Equal(t, PredictionRequest{}, form.Values)
	assert.Empty(t, form.Get(Field("Favourite_Colour")))
}

func TestFormReset(t *testing.T) {
	form := NewForm()
	require.NoError(t, form.Set(FieldRelationshipName, "Alice"))
	form.Errors[FieldSentimentScore] = "bad"

	form.Reset()

	assert.Equal(t, PredictionRequest{}, form.Values)
	assert.Empty(t, form.Errors)
	assert.NotNil(t, form.Errors)
}

func TestFieldClassification(t *testing.T) {
	assert.True(t, FieldAttendanceAtEvents.Numeric())
	assert.False(t, FieldRelationshipName.Numeric())
	assert.True(t, FieldRelationshipName.Valid())
	assert.False(t, Field("Help").Valid())
	assert.Len(t, Fields, 6)
}
