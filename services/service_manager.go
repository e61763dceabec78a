package services

import (
	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"go.uber.org/zap"
)

type ServiceManager struct {
	Validator         Validator
	PredictService    PredictService
	SubmissionService SubmissionService
}

func NewServiceManager(cfg *config.Config, predictor *config.PredictorClient, logger *zap.Logger) (*ServiceManager, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	predictService := NewPredictService(predictor, cfg.PredictorTimeout, logger.Named("predictor"))

	return &ServiceManager{
		Validator:         validator,
		PredictService:    predictService,
		SubmissionService: NewSubmissionService(validator, predictService, cfg.ResetDelay, logger.Named("submission")),
	}, nil
}
