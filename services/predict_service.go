package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/Bipul-Dubey/loyalty-predictor/models"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPredictorUnavailable covers unreachable hosts, timeouts and non-2xx answers.
	ErrPredictorUnavailable = errors.New("loyalty predictor unavailable")
	// ErrMalformedResponse means the predictor answered 2xx without a usable score.
	ErrMalformedResponse = errors.New("malformed loyalty predictor response")
)

const maxPredictorBody = 1 << 20

type PredictService interface {
	PredictLoyalty(ctx context.Context, req models.PredictionRequest) (float64, error)
}

type predictService struct {
	predictor *config.PredictorClient
	timeout   time.Duration
	logger    *zap.Logger
}

func NewPredictService(predictor *config.PredictorClient, timeout time.Duration, logger *zap.Logger) PredictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictService{
		predictor: predictor,
		timeout:   timeout,
		logger:    logger,
	}
}

// PredictLoyalty posts the record to the predictor and returns the score it
// answered with. One attempt, no retry.
func (s *predictService) PredictLoyalty(ctx context.Context, req models.PredictionRequest) (float64, error) {
	if s.predictor == nil {
		return 0, fmt.Errorf("%w: predictor not configured", ErrPredictorUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.predictor.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build prediction request: %w", err)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	log := s.logger.With(zap.String("request_id", requestID), zap.String("endpoint", s.predictor.Endpoint()))
	start := time.Now()

	resp, err := s.predictor.GetClient().Do(httpReq)
	if err != nil {
		log.Warn("Prediction request failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPredictorBody))
		log.Warn("Predictor rejected request", zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("%w: status %d", ErrPredictorUnavailable, resp.StatusCode)
	}

	var out models.PredictorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPredictorBody)).Decode(&out); err != nil {
		log.Warn("Predictor response not decodable", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.LoyaltyScore == nil {
		log.Warn("Predictor response has no loyalty_score")
		return 0, fmt.Errorf("%w: loyalty_score missing", ErrMalformedResponse)
	}

	log.Debug("Prediction received",
		zap.Float64("loyalty_score", *out.LoyaltyScore),
		zap.Duration("elapsed", time.Since(start)))
	return *out.LoyaltyScore, nil
}
