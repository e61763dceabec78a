package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictorFor(t *testing.T, url string, timeout time.Duration) PredictService {
	t.Helper()
	cfg := config.Default()
	cfg.PredictorURL = url
	client, err := config.NewPredictorClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewPredictService(client, timeout, nil)
}

func TestPredictLoyaltySendsRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get(RequestIDHeader))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"Frequency_of_Communication": "5",
			"Help_in_Crises":             "2",
			"Financial_Support_Provided": "100",
			"Attendance_at_Events":       "50",
			"Sentiment_Score":            "8",
			"Relationship_Name":          "Alice",
		}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"loyalty_score": 8.5}`))
	}))
	defer server.Close()

	svc := newPredictorFor(t, server.URL+"/predict", time.Second)
	ctx := ContextWithRequestID(context.Background(), "req-123")

	score, err := svc.PredictLoyalty(ctx, validRecord())
	require.NoError(t, err)
	assert.Equal(t, 8.5, score)
}

func TestPredictLoyaltyFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: ErrPredictorUnavailable,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "score missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"score": 9}`))
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "score not a number",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"loyalty_score": "nine"}`))
			},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := newPredictorFor(t, server.URL+"/predict", time.Second)
			_, err := svc.PredictLoyalty(context.Background(), validRecord())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPredictLoyaltyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/predict"
	server.Close()

	svc := newPredictorFor(t, url, time.Second)
	_, err := svc.PredictLoyalty(context.Background(), validRecord())
	assert.ErrorIs(t, err, ErrPredictorUnavailable)
}

func TestPredictLoyaltyTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	svc := newPredictorFor(t, server.URL+"/predict", 50*time.Millisecond)
	_, err := svc.PredictLoyalty(context.Background(), validRecord())
	assert.ErrorIs(t, err, ErrPredictorUnavailable)
}

func TestPredictLoyaltyWithoutClient(t *testing.T) {
	svc := NewPredictService(nil, 0, nil)
	_, err := svc.PredictLoyalty(context.Background(), validRecord())
	assert.ErrorIs(t, err, ErrPredictorUnavailable)
}
