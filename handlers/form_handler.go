package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/Bipul-Dubey/loyalty-predictor/views"
	"github.com/gin-gonic/gin"
)

// FormHandler serves the server-rendered prediction form.
type FormHandler struct {
	submissionService services.SubmissionService
}

func NewFormHandler(submissionService services.SubmissionService) *FormHandler {
	return &FormHandler{submissionService: submissionService}
}

// Show renders an empty form.
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, views.PredictPage, views.NewPageData(models.NewForm(), nil, 0))
}

// Submit validates and submits the posted form, then renders it again with
// inline errors or a toast.
func (h *FormHandler) Submit(c *gin.Context) {
	form := models.NewForm()
	if err := c.ShouldBind(&form.Values); err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusBadRequest, views.PredictPage, views.NewPageData(form, &services.Notification{
			Message:  "Could not read the submitted form. Please try again.",
			Severity: constants.SeverityError,
		}, 0))
		return
	}

	toasts := &services.ToastCollector{}
	result, err := h.submissionService.Submit(c.Request.Context(), form, toasts)
	if err != nil {
		_ = c.Error(err)
	}

	var toast *services.Notification
	if last, ok := toasts.Last(); ok {
		toast = &last
	}

	c.HTML(statusFor(result), views.PredictPage, views.NewPageData(form, toast, result.ResetAfter))
}

func statusFor(result *services.SubmitResult) int {
	switch result.Status {
	case services.SubmitBlocked:
		return http.StatusUnprocessableEntity
	case services.SubmitFailed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
