package entity

import (
	"time"

	"github.com/jacentio/platter/internal/ident"
)

// TypeMeal discriminates meal records in the shared table.
const TypeMeal = "meal"

// Meal is a canonical meal record. Partitioned by restaurant so a
// restaurant's menu is a single-partition read; area-scoped meal queries
// filter on the delivery_area attribute instead.
type Meal struct {
	PartitionKey    string  `json:"PartitionKey" dynamodbav:"pk"`
	RowKey          string  `json:"RowKey" dynamodbav:"rk"`
	Type            string  `json:"type" dynamodbav:"type"`
	Name            string  `json:"name" dynamodbav:"name"`
	Description     string  `json:"description" dynamodbav:"description"`
	Price           float64 `json:"price" dynamodbav:"price"`
	PrepTimeMinutes int     `json:"prepTimeMinutes" dynamodbav:"prepTimeMinutes"`
	DeliveryArea    string  `json:"delivery_area" dynamodbav:"delivery_area"`
	CreatedAt       string  `json:"createdAt" dynamodbav:"createdAt"`
}

// ParseMeal validates and normalizes a meal registration payload. On
// success the returned record carries a fresh row key and UTC timestamp.
// Failures are *FieldError values naming the first violated field.
func ParseMeal(p Payload) (*Meal, error) {
	name := p.str("name")
	description := p.str("description")
	deliveryArea := p.str("delivery_area", "area")
	restaurant := p.str("restaurant", "restaurant_name", "restaurantId")

	if name == "" {
		return nil, requiredErr("name")
	}
	if description == "" {
		return nil, requiredErr("description")
	}
	if deliveryArea == "" {
		return nil, requiredErr("delivery_area")
	}
	priceRaw, ok := p.lookup("price", "unit_price")
	if !ok {
		return nil, requiredErr("price")
	}
	prepRaw, ok := p.lookup("prepTimeMinutes", "prep_time_minutes", "time")
	if !ok {
		return nil, requiredErr("prepTimeMinutes")
	}

	price, err := toFloat(priceRaw)
	if err != nil {
		return nil, &FieldError{Field: "price", Reason: ReasonType, Message: "'price' must be numeric"}
	}
	prep, err := toInt(prepRaw)
	if err != nil {
		return nil, &FieldError{Field: "prepTimeMinutes", Reason: ReasonType, Message: "'prepTimeMinutes' must be an integer"}
	}

	if price <= 0 {
		return nil, &FieldError{Field: "price", Reason: ReasonRange, Message: "'price' must be greater than 0"}
	}
	if prep <= 0 {
		return nil, &FieldError{Field: "prepTimeMinutes", Reason: ReasonRange, Message: "'prepTimeMinutes' must be greater than 0"}
	}

	return &Meal{
		PartitionKey:    restaurant,
		RowKey:          ident.New("meal"),
		Type:            TypeMeal,
		Name:            name,
		Description:     description,
		Price:           price,
		PrepTimeMinutes: prep,
		DeliveryArea:    deliveryArea,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func requiredErr(field string) *FieldError {
	return &FieldError{Field: field, Reason: ReasonRequired, Message: "'" + field + "' is required"}
}
