package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/Bipul-Dubey/loyalty-predictor/middleware"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/Bipul-Dubey/loyalty-predictor/utils"
	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	submissionService services.SubmissionService
}

func NewPredictHandler(submissionService services.SubmissionService) *PredictHandler {
	return &PredictHandler{
		submissionService: submissionService,
	}
}

// Predict is the JSON flavour of the form: same validation, same banding.
func (h *PredictHandler) Predict(c *gin.Context) {
	form := models.NewForm()
	if err := c.ShouldBindJSON(&form.Values); err != nil {
		c.JSON(http.StatusBadRequest, utils.APIResponse(true, "Invalid request data", err.Error()))
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), form, nil)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, utils.APIResponse(true, constants.GenericPredictionFailure, gin.H{
			"submission_id": result.SubmissionID,
			"request_id":    middleware.RequestID(c),
		}, http.StatusBadGateway))
		return
	}

	if result.Status == services.SubmitBlocked {
		c.JSON(http.StatusUnprocessableEntity, utils.ValidationResponse(form.Errors))
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse(false, result.Notification.Message, models.PredictResponse{
		SubmissionID:     result.SubmissionID,
		RelationshipName: result.RelationshipName,
		LoyaltyScore:     result.Score,
		Band:             string(result.Band),
		Severity:         string(result.Notification.Severity),
		Message:          result.Notification.Message,
		ResetAfterMillis: result.ResetAfter.Milliseconds(),
	}))
}
