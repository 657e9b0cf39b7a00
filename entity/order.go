package entity

import (
	"encoding/json"
	"time"

	"github.com/jacentio/platter/internal/ident"
)

// TypeOrder discriminates order records in the shared table.
const TypeOrder = "order"

// LineItem is one validated entry of an order's items list. RestaurantID,
// MealID and Name are informational copies from the client, not foreign
// keys the store enforces.
type LineItem struct {
	RestaurantID    string  `json:"restaurantId"`
	MealID          string  `json:"mealId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Qty             int     `json:"qty"`
	PrepTimeMinutes int     `json:"prepTimeMinutes"`
}

// Order is a canonical order record, partitioned by delivery area so an
// area's order feed is a single-partition read. Subtotal and
// EstimatedMinutes are derived from the items at creation and stay
// consistent with ItemsJSON forever after (records are immutable).
type Order struct {
	PartitionKey     string  `json:"PartitionKey" dynamodbav:"pk"`
	RowKey           string  `json:"RowKey" dynamodbav:"rk"`
	Type             string  `json:"type" dynamodbav:"type"`
	CreatedAt        string  `json:"createdAt" dynamodbav:"createdAt"`
	DeliveryArea     string  `json:"delivery_area" dynamodbav:"delivery_area"`
	Address          string  `json:"address" dynamodbav:"address"`
	ItemsJSON        string  `json:"itemsJson" dynamodbav:"itemsJson"`
	Subtotal         float64 `json:"subtotal" dynamodbav:"subtotal"`
	EstimatedMinutes int     `json:"estimatedMinutes" dynamodbav:"estimatedMinutes"`
}

// ParseOrder validates and normalizes an order registration payload.
// Any item that fails to coerce aborts the whole order; there is no
// partial acceptance.
func ParseOrder(p Payload) (*Order, error) {
	deliveryArea := p.str("delivery_area", "area")
	address := p.str("address")

	if deliveryArea == "" {
		return nil, requiredErr("delivery_area")
	}
	if address == "" {
		return nil, requiredErr("address")
	}

	rawItems, ok := p["items"].([]any)
	if !ok || len(rawItems) == 0 {
		return nil, &FieldError{Field: "items", Reason: ReasonRequired, Message: "'items' must be a non-empty list"}
	}

	items, err := parseItems(rawItems)
	if err != nil {
		return nil, err
	}

	subtotal, estimated := Estimate(items)

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	return &Order{
		PartitionKey:     deliveryArea,
		RowKey:           ident.New("ord"),
		Type:             TypeOrder,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		DeliveryArea:     deliveryArea,
		Address:          address,
		ItemsJSON:        string(itemsJSON),
		Subtotal:         subtotal,
		EstimatedMinutes: estimated,
	}, nil
}

// parseItems coerces every raw item or fails the batch on the first bad one.
func parseItems(rawItems []any) ([]LineItem, error) {
	itemErr := &FieldError{
		Field:   "items",
		Reason:  ReasonItems,
		Message: "each item must include numeric 'price' and 'prepTimeMinutes'",
	}

	items := make([]LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, itemErr
		}
		p := Payload(m)

		priceRaw, ok := p.lookup("price")
		if !ok {
			return nil, itemErr
		}
		price, err := toFloat(priceRaw)
		if err != nil {
			return nil, itemErr
		}

		qty := 1
		if qtyRaw, ok := p.lookup("qty"); ok {
			if qty, err = toInt(qtyRaw); err != nil {
				return nil, itemErr
			}
		}

		prep := 0
		if prepRaw, ok := p.lookup("prepTimeMinutes"); ok {
			if prep, err = toInt(prepRaw); err != nil {
				return nil, itemErr
			}
		}

		items = append(items, LineItem{
			RestaurantID:    p.str("restaurantId"),
			MealID:          p.str("mealId"),
			Name:            p.str("name"),
			Price:           price,
			Qty:             qty,
			PrepTimeMinutes: prep,
		})
	}
	return items, nil
}
