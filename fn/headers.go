package fn

// Default CORS values. Origin is open because the public frontend is served
// from an arbitrary static host; restrict per deployment via Headers.
const (
	defaultAllowOrigin  = "*"
	defaultAllowHeaders = "Content-Type, x-functions-key"
)

// Headers configures the CORS and content-type headers attached to every
// response. The zero value plus an AllowMethods list is a working default;
// tests override the struct wholesale.
type Headers struct {
	// AllowOrigin is the Access-Control-Allow-Origin value. Default "*".
	AllowOrigin string

	// AllowMethods is the Access-Control-Allow-Methods value advertised on
	// preflight, e.g. "POST,OPTIONS".
	AllowMethods string

	// AllowHeaders is the Access-Control-Allow-Headers value.
	// Default "Content-Type, x-functions-key".
	AllowHeaders string
}

func (h Headers) withDefaults() Headers {
	if h.AllowOrigin == "" {
		h.AllowOrigin = defaultAllowOrigin
	}
	if h.AllowHeaders == "" {
		h.AllowHeaders = defaultAllowHeaders
	}
	return h
}

// Response returns the headers attached to every non-preflight response.
func (h Headers) Response() map[string]string {
	h = h.withDefaults()
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  h.AllowOrigin,
		"Access-Control-Allow-Headers": h.AllowHeaders,
	}
}

// Preflight returns the headers for an OPTIONS response, including the
// allowed-methods metadata.
func (h Headers) Preflight() map[string]string {
	h = h.withDefaults()
	return map[string]string{
		"Access-Control-Allow-Origin":  h.AllowOrigin,
		"Access-Control-Allow-Methods": h.AllowMethods,
		"Access-Control-Allow-Headers": h.AllowHeaders,
	}
}
