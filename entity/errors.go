package entity

// Violated constraint kinds carried by FieldError.
const (
	ReasonRequired = "required"
	ReasonType     = "invalid type"
	ReasonRange    = "out of range"
	ReasonItems    = "invalid item"
)

// FieldError reports a validation failure on a single logical field.
type FieldError struct {
	// Field is the canonical field name (not the alias the client used).
	Field string

	// Reason is one of the Reason* constants.
	Reason string

	// Message is a human-readable description for the response body.
	Message string
}

func (e *FieldError) Error() string {
	return "entity: " + e.Field + ": " + e.Message
}
