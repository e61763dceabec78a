package utils

import (
	"net/http"
	"testing"

	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/stretchr/testify/assert"
)

func TestAPIResponseStatusDefaults(t *testing.T) {
	assert.Equal(t, http.StatusOK, APIResponse(false, "ok", nil).Status)
	assert.Equal(t, http.StatusBadRequest, APIResponse(true, "bad", nil).Status)
	assert.Equal(t, http.StatusBadGateway, APIResponse(true, "down", nil, http.StatusBadGateway).Status)
}

func TestValidationResponse(t *testing.T) {
	errs := models.ValidationErrors{models.FieldSentimentScore: "Sentiment Score must be between 1 and 10."}

	resp := ValidationResponse(errs)

	assert.True(t, resp.Error)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, map[string]interface{}{"errors": errs}, resp.Data)
}
