package utils

import (
	"net/http"

	"github.com/Bipul-Dubey/loyalty-predictor/models"
)

// GenericResponse is the envelope every JSON endpoint answers with.
type GenericResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Status  int         `json:"status"`
}

// APIResponse builds an envelope.
// errorFlag=true without a status defaults to 400, otherwise 200.
func APIResponse(errorFlag bool, message string, data interface{}, status ...int) GenericResponse {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	} else if errorFlag {
		code = http.StatusBadRequest
	}

	return GenericResponse{
		Error:   errorFlag,
		Message: message,
		Data:    data,
		Status:  code,
	}
}

// ValidationResponse wraps a field error set as a 422 envelope.
func ValidationResponse(errs models.ValidationErrors) GenericResponse {
	return APIResponse(true, "Validation failed", map[string]interface{}{"errors": errs}, http.StatusUnprocessableEntity)
}
