package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = 5 * time.Second

type predictRequest struct {
	Mover    uint64 `json:"mover"`
	Opponent uint64 `json:"opponent"`
	Legal    uint64 `json:"legal"`
}

type predictResponse struct {
	Scores []float32 `json:"scores"`
}

// Client is a Model served over HTTP at {baseURL}/predict.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient initializes a Client. A nil httpClient uses one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) Scores(ctx context.Context, req Request) ([]float32, error) {
	body, err := json.Marshal(predictRequest{
		Mover:    uint64(req.Mover),
		Opponent: uint64(req.Opponent),
		Legal:    uint64(req.Legal),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach predictor")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("predictor returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if len(decoded.Scores) != 64 {
		return nil, errors.Errorf("predictor returned %d scores", len(decoded.Scores))
	}
	return decoded.Scores, nil
}

// Predictor is shorthand for Picker{Model: c}.
func (c *Client) Predictor() Predictor {
	return Picker{Model: c}
}

var _ Model = (*Client)(nil)
