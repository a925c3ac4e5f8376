package whttp

import (
	"log/slog"
	"net/http"
	"time"
)

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	slog.Debug("outgoing request", "method", req.Method, "url", req.URL.String())

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.Error("request failed", "method", req.Method, "url", req.URL.String(), "error", err.Error())
		return res, err
	}

	slog.Debug("received response", "status", res.Status, "url", req.URL.String())

	return res, nil
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}
