package handlers

import (
	"github.com/Bipul-Dubey/loyalty-predictor/services"
)

type HandlerManager struct {
	FormHandler    *FormHandler
	PredictHandler *PredictHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		FormHandler:    NewFormHandler(sm.SubmissionService),
		PredictHandler: NewPredictHandler(sm.SubmissionService),
	}
}
