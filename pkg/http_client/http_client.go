package http_client

import (
	"net/http"
	"time"

	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

type HTTPClient struct {
	Client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		Client: &http.Client{
			Transport: &loggingTransport{next: http.DefaultTransport},
		},
	}
}

// loggingTransport records every upstream round trip made on behalf of a request.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		zaplog.ErrorC(req.Context(), "upstream request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	zaplog.InfoC(req.Context(), "upstream request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
