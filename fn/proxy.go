package fn

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/platter/proxy"
)

// ProxyHandler fronts one privileged write endpoint, re-serializing the
// client body and letting the forwarder inject the key. The same handler
// serves both proxied operations; only the forwarder config differs.
type ProxyHandler struct {
	forwarder *proxy.Forwarder
	headers   Headers
	logger    *slog.Logger
}

// NewProxyHandler creates a proxy handler. Nil logger means slog.Default().
func NewProxyHandler(forwarder *proxy.Forwarder, headers Headers, logger *slog.Logger) *ProxyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProxyHandler{
		forwarder: forwarder,
		headers:   headers,
		logger:    logger,
	}
}

// Handle relays the request body to the internal endpoint and passes the
// downstream status and body back verbatim. 400 on unparsable JSON, 500
// when the target is not configured (fail closed, nothing relayed), 502
// when the relay itself fails.
func (h *ProxyHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("proxy triggered", "method", req.HTTPMethod)

	if req.HTTPMethod == http.MethodOptions {
		return preflight(h.headers), nil
	}

	var payload any
	if err := json.Unmarshal([]byte(req.Body), &payload); err != nil {
		return respondError(http.StatusBadRequest, "Invalid JSON", h.headers), nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return respondError(http.StatusBadRequest, "Invalid JSON", h.headers), nil
	}

	status, respBody, err := h.forwarder.Forward(ctx, body)
	if err != nil {
		if errors.Is(err, proxy.ErrNotConfigured) {
			h.logger.Error("proxy target not configured")
			return respondError(http.StatusInternalServerError, "Server not configured (target URL / key missing)", h.headers), nil
		}

		h.logger.Error("proxy call failed", "error", err)
		detail := err.Error()
		var relayErr *proxy.RelayError
		if errors.As(err, &relayErr) {
			detail = relayErr.Detail
		}
		return respondJSON(http.StatusBadGateway, map[string]string{
			"error":  "proxy_failed",
			"detail": detail,
		}, h.headers), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h.headers.Response(),
		Body:       string(respBody),
	}, nil
}
