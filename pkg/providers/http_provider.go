package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mercator-hq/textutil/pkg/telemetry/tracing"
)

// maxErrorBody caps how much of a non-2xx response body is kept in the
// error message.
const maxErrorBody = 64 * 1024

// HTTPProvider is the base implementation for HTTP-based provider adapters.
// It owns the pooled HTTP client and performs single-attempt JSON requests.
type HTTPProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewHTTPProvider creates a new base HTTP provider with connection pooling.
func NewHTTPProvider(config ProviderConfig) *HTTPProvider {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPProvider{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
	}
}

// GetName returns the provider's configured name.
func (p *HTTPProvider) GetName() string {
	return p.config.Name
}

// GetConfig returns the provider's configuration.
func (p *HTTPProvider) GetConfig() ProviderConfig {
	return p.config
}

// DoRequest performs one HTTP request. A 2xx response is returned to the
// caller, who must close its body. Anything else is a *ProviderError.
func (p *HTTPProvider) DoRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Response, error) {

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, &ProviderError{
			Provider: p.config.Name,
			Message:  "failed to create request",
			Cause:    err,
		}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tracing.Inject(ctx, req.Header)

	slog.DebugContext(ctx, "sending request to provider",
		"provider", p.config.Name,
		"method", method,
		"url", url,
	)

	resp, err := p.client.Do(req)
	if err != nil {
		msg := "request failed"
		if ctx.Err() != nil {
			msg = "request cancelled"
		}
		if isTimeout(err) {
			msg = fmt.Sprintf("request timed out after %s", p.config.Timeout)
		}
		return nil, &ProviderError{
			Provider: p.config.Name,
			Message:  msg,
			Cause:    err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()

	errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := strings.TrimSpace(string(errorBody))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	slog.WarnContext(ctx, "provider returned error status",
		"provider", p.config.Name,
		"status", resp.StatusCode,
	)

	return nil, &ProviderError{
		Provider:   p.config.Name,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// DoJSONRequest marshals reqBody, performs the request and decodes the
// response into respBody.
func (p *HTTPProvider) DoJSONRequest(ctx context.Context, method, url string, reqBody interface{}, respBody interface{}, headers map[string]string) error {
	var bodyBytes []byte
	if reqBody != nil {
		var err error
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return &ProviderError{
				Provider: p.config.Name,
				Message:  "failed to marshal request",
				Cause:    err,
			}
		}
	}

	resp, err := p.DoRequest(ctx, method, url, bodyBytes, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{
			Provider: p.config.Name,
			Message:  "failed to read response",
			Cause:    err,
		}
	}

	if respBody != nil {
		if err := json.Unmarshal(responseBytes, respBody); err != nil {
			return &ProviderError{
				Provider: p.config.Name,
				Message:  "failed to decode response",
				Cause:    err,
			}
		}
	}

	return nil
}

// Close closes idle connections held by the client.
func (p *HTTPProvider) Close() error {
	p.client.CloseIdleConnections()
	slog.Debug("provider closed", "provider", p.config.Name)
	return nil
}
