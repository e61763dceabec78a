package services

import (
	"context"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitStatus string

const (
	// SubmitBlocked means validation failed and nothing was sent.
	SubmitBlocked SubmitStatus = "blocked"
	// SubmitPredicted means a score came back and the form was reset.
	SubmitPredicted SubmitStatus = "predicted"
	// SubmitFailed means the predictor could not be reached or answered badly.
	SubmitFailed SubmitStatus = "failed"
)

// SubmitResult describes how one submit attempt ended.
type SubmitResult struct {
	SubmissionID     string
	Status           SubmitStatus
	RelationshipName string
	Score            float64
	Band             Band
	Notification     *Notification
	// ResetAfter is how long the front end keeps the result on screen before
	// discarding all remaining UI state. Zero unless Status is SubmitPredicted.
	ResetAfter time.Duration
}

type SubmissionService interface {
	Submit(ctx context.Context, form *models.Form, notifier Notifier) (*SubmitResult, error)
}

type submissionService struct {
	validator  Validator
	predictor  PredictService
	resetDelay time.Duration
	logger     *zap.Logger
}

func NewSubmissionService(validator Validator, predictor PredictService, resetDelay time.Duration, logger *zap.Logger) SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &submissionService{
		validator:  validator,
		predictor:  predictor,
		resetDelay: resetDelay,
		logger:     logger,
	}
}

// Submit runs validate → predict → notify → reset for the form.
// The returned error is non-nil only when the predictor failed; the form is
// then left untouched so the user can resubmit.
func (s *submissionService) Submit(ctx context.Context, form *models.Form, notifier Notifier) (*SubmitResult, error) {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}

	result := &SubmitResult{
		SubmissionID:     uuid.NewString(),
		RelationshipName: form.Values.RelationshipName,
	}
	log := s.logger.With(zap.String("submission_id", result.SubmissionID))

	// 1️⃣ Validate locally, no toast for this category
	errs := s.validator.Validate(form.Values)
	if len(errs) > 0 {
		form.Errors = errs
		result.Status = SubmitBlocked
		log.Debug("Submission blocked by validation", zap.Int("invalid_fields", len(errs)))
		return result, nil
	}

	// 2️⃣ One round trip to the predictor
	if RequestIDFromContext(ctx) == "" {
		ctx = ContextWithRequestID(ctx, result.SubmissionID)
	}
	score, err := s.predictor.PredictLoyalty(ctx, form.Values)
	if err != nil {
		result.Status = SubmitFailed
		result.Notification = &Notification{
			Message:  constants.GenericPredictionFailure,
			Severity: constants.SeverityError,
		}
		notifier.Notify(*result.Notification)
		log.Error("Prediction failed", zap.Error(err))
		return result, err
	}

	// 3️⃣ Band the score and tell the user
	band := ClassifyScore(score)
	result.Status = SubmitPredicted
	result.Score = score
	result.Band = band
	result.Notification = &Notification{
		Message:  band.Message(form.Values.RelationshipName),
		Severity: band.Severity(),
	}
	notifier.Notify(*result.Notification)

	// 4️⃣ Reset the form and hand the reset delay to the front end
	form.Reset()
	result.ResetAfter = s.resetDelay

	log.Info("Loyalty predicted",
		zap.Float64("loyalty_score", score),
		zap.String("band", string(band)))
	return result, nil
}
