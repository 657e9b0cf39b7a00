package fn

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/platter/entity"
	"github.com/jacentio/platter/store"
)

// Querier is the store surface the query handlers need.
type Querier interface {
	Query(ctx context.Context, f store.Filter, limit int) ([]store.Record, error)
}

// QueryHandler handles area-scoped meal and order reads.
type QueryHandler struct {
	store   Querier
	headers Headers
	logger  *slog.Logger
}

// NewQueryHandler creates a query handler. Nil logger means slog.Default().
func NewQueryHandler(store Querier, headers Headers, logger *slog.Logger) *QueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryHandler{
		store:   store,
		headers: headers,
		logger:  logger,
	}
}

// QueryMeals lists meals for a delivery area, optionally narrowed by exact
// name and a price band. delivery_area is required. Meals are partitioned
// by restaurant, so this filters on the delivery_area attribute and scans
// across partitions, bounded by the top cap.
func (h *QueryHandler) QueryMeals(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("query meals triggered", "method", req.HTTPMethod)

	if req.HTTPMethod == http.MethodOptions {
		return preflight(h.headers), nil
	}

	params := req.QueryStringParameters

	area := params["delivery_area"]
	if area == "" {
		return respondError(http.StatusBadRequest, "Query param 'delivery_area' is required.", h.headers), nil
	}

	preds := []store.Predicate{
		{Field: store.AttrType, Op: store.OpEq, Value: entity.TypeMeal},
		{Field: "delivery_area", Op: store.OpEq, Value: area},
	}
	if name := params["name"]; name != "" {
		preds = append(preds, store.Predicate{Field: "name", Op: store.OpEq, Value: name})
	}
	if maxPrice, ok := floatParam(params, "max_price"); ok {
		preds = append(preds, store.Predicate{Field: "price", Op: store.OpLE, Value: maxPrice})
	}
	if minPrice, ok := floatParam(params, "min_price"); ok {
		preds = append(preds, store.Predicate{Field: "price", Op: store.OpGE, Value: minPrice})
	}

	return h.run(ctx, store.BuildFilter(preds), intParam(params, "top"))
}

// QueryOrders lists orders for a delivery area and/or looks one up by order
// id. At least one of the two params is required; order_id alone scans
// across partitions, bounded by the top cap.
func (h *QueryHandler) QueryOrders(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("query orders triggered", "method", req.HTTPMethod)

	if req.HTTPMethod == http.MethodOptions {
		return preflight(h.headers), nil
	}

	params := req.QueryStringParameters

	area := params["delivery_area"]
	orderID := params["order_id"]
	if area == "" && orderID == "" {
		return respondError(http.StatusBadRequest, "Provide 'delivery_area' or 'order_id'", h.headers), nil
	}

	preds := []store.Predicate{
		{Field: store.AttrType, Op: store.OpEq, Value: entity.TypeOrder},
	}
	if area != "" {
		preds = append(preds, store.Predicate{Field: store.AttrPartitionKey, Op: store.OpEq, Value: area})
	}
	if orderID != "" {
		preds = append(preds, store.Predicate{Field: store.AttrRowKey, Op: store.OpEq, Value: orderID})
	}

	return h.run(ctx, store.BuildFilter(preds), intParam(params, "top"))
}

// run executes the query and renders the result array or the error body.
func (h *QueryHandler) run(ctx context.Context, f store.Filter, top int) (events.APIGatewayProxyResponse, error) {
	recs, err := h.store.Query(ctx, f, top)
	if err != nil {
		h.logger.Error("query failed", "filter", f.Expr(), "error", err)
		return respondJSON(http.StatusInternalServerError, map[string]string{
			"error":  err.Error(),
			"filter": f.Expr(),
		}, h.headers), nil
	}
	if recs == nil {
		recs = []store.Record{}
	}
	return respondJSON(http.StatusOK, recs, h.headers), nil
}

// floatParam parses an optional float query param; unparsable values count
// as absent rather than erroring.
func floatParam(params map[string]string, name string) (float64, bool) {
	raw, ok := params[name]
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// intParam parses an optional int query param, 0 (store default) if absent
// or unparsable.
func intParam(params map[string]string, name string) int {
	v, err := strconv.Atoi(params[name])
	if err != nil {
		return 0
	}
	return v
}
