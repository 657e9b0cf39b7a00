package fn

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/platter/entity"
)

// Putter is the store surface the registration handlers need.
type Putter interface {
	Put(ctx context.Context, rec any) error
}

// RegisterHandler handles meal and order registration requests.
type RegisterHandler struct {
	store   Putter
	headers Headers
	logger  *slog.Logger
}

// NewRegisterHandler creates a registration handler. A zero Headers value
// gets the package defaults; nil logger means slog.Default().
func NewRegisterHandler(store Putter, headers Headers, logger *slog.Logger) *RegisterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterHandler{
		store:   store,
		headers: headers,
		logger:  logger,
	}
}

// RegisterMeal validates a meal payload and persists it partitioned by
// restaurant. 201 with the stored entity on success; 400 naming the bad
// field; 500 when the store write fails (no internal retry).
func (h *RegisterHandler) RegisterMeal(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("register meal triggered", "method", req.HTTPMethod)

	if req.HTTPMethod == http.MethodOptions {
		return preflight(h.headers), nil
	}

	meal, err := entity.ParseMeal(decodePayload(req.Body))
	if err != nil {
		return h.validationResponse(err), nil
	}

	if err := h.store.Put(ctx, meal); err != nil {
		h.logger.Error("meal write failed", "mealId", meal.RowKey, "error", err)
		return respondError(http.StatusInternalServerError, "table_write_failed: "+err.Error(), h.headers), nil
	}

	return respondJSON(http.StatusCreated, map[string]any{
		"ok":     true,
		"mealId": meal.RowKey,
		"entity": meal,
	}, h.headers), nil
}

// RegisterOrder validates an order payload, derives its subtotal and
// estimated fulfillment time, and persists it partitioned by delivery area.
func (h *RegisterHandler) RegisterOrder(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("register order triggered", "method", req.HTTPMethod)

	if req.HTTPMethod == http.MethodOptions {
		return preflight(h.headers), nil
	}

	order, err := entity.ParseOrder(decodePayload(req.Body))
	if err != nil {
		return h.validationResponse(err), nil
	}

	if err := h.store.Put(ctx, order); err != nil {
		h.logger.Error("order write failed", "orderId", order.RowKey, "error", err)
		return respondError(http.StatusInternalServerError, "table_write_failed: "+err.Error(), h.headers), nil
	}

	return respondJSON(http.StatusCreated, map[string]any{
		"ok":      true,
		"orderId": order.RowKey,
		"entity":  order,
	}, h.headers), nil
}

// validationResponse maps a parse failure to a 400 with the failing field's
// message. Anything that is not a FieldError is an internal fault.
func (h *RegisterHandler) validationResponse(err error) events.APIGatewayProxyResponse {
	var fieldErr *entity.FieldError
	if errors.As(err, &fieldErr) {
		return respondError(http.StatusBadRequest, fieldErr.Message, h.headers)
	}
	return respondError(http.StatusInternalServerError, err.Error(), h.headers)
}
