package config

import (
	"fmt"
	"net/http"
	"net/url"
)

// PredictorClient carries the connection settings for the remote loyalty
// predictor.
type PredictorClient struct {
	endpoint *url.URL
	client   *http.Client
}

func NewPredictorClient(cfg *Config) (*PredictorClient, error) {
	endpoint, err := url.Parse(cfg.PredictorURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse predictor url: %w", err)
	}

	return &PredictorClient{
		endpoint: endpoint,
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}, nil
}

func (p *PredictorClient) Endpoint() string {
	return p.endpoint.String()
}

func (p *PredictorClient) GetClient() *http.Client {
	return p.client
}

func (p *PredictorClient) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
