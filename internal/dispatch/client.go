package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

// Client calls a remotely deployed dispatcher over HTTP. It satisfies the
// same Dispatch signature as Service, so the wizard can run against either
// an in-process dispatcher or the serverless deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient creates a dispatch client for baseURL (e.g. the function
// endpoint). A nil httpClient gets a 15s-timeout default.
func NewClient(baseURL string, httpClient *http.Client, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Dispatch POSTs the request to the remote dispatcher and decodes the
// Result. A non-2xx status or success=false is reported as an error.
func (c *Client) Dispatch(ctx context.Context, req *EmailDispatchRequest) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("dispatch: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("dispatch: call remote dispatcher: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("dispatch: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || !result.Success {
		detail := result.Error
		if result.Details != "" {
			detail = fmt.Sprintf("%s: %s", result.Error, result.Details)
		}
		return nil, fmt.Errorf("dispatch: remote dispatcher returned status %d: %s", resp.StatusCode, detail)
	}

	return &result, nil
}
