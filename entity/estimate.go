package entity

// Fulfillment time policy. Flat minutes regardless of area or distance;
// per-area transit times would live here if that ever becomes a requirement.
const (
	FixedPickupMinutes   = 10
	FixedDeliveryMinutes = 15
)

// Estimator derives order totals. The zero value is not useful; start from
// DefaultEstimator and override the policy minutes as needed.
type Estimator struct {
	PickupMinutes   int
	DeliveryMinutes int
}

// DefaultEstimator returns an Estimator with the fixed policy minutes.
func DefaultEstimator() Estimator {
	return Estimator{
		PickupMinutes:   FixedPickupMinutes,
		DeliveryMinutes: FixedDeliveryMinutes,
	}
}

// Estimate computes the order subtotal and estimated fulfillment minutes.
// Pure and deterministic: subtotal is Σ price×qty, minutes is Σ prep×qty
// plus the pickup and delivery policy. A zero-quantity item contributes
// nothing to either sum.
func (e Estimator) Estimate(items []LineItem) (subtotal float64, estimatedMinutes int) {
	prepSum := 0
	for _, it := range items {
		subtotal += it.Price * float64(it.Qty)
		prepSum += it.PrepTimeMinutes * it.Qty
	}
	return subtotal, prepSum + e.PickupMinutes + e.DeliveryMinutes
}

// Estimate applies the default fixed policy.
func Estimate(items []LineItem) (subtotal float64, estimatedMinutes int) {
	return DefaultEstimator().Estimate(items)
}
