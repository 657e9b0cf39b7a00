package fn

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// respondJSON marshals v into a response with the given status and headers.
func respondJSON(status int, v any, headers Headers) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers.Response(),
			Body:       `{"error":"encoding failed"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers.Response(),
		Body:       string(body),
	}
}

// respondError returns a structured {"error": ...} body. Error responses
// carry the same CORS headers as success ones so browsers can read them.
func respondError(status int, msg string, headers Headers) events.APIGatewayProxyResponse {
	return respondJSON(status, map[string]string{"error": msg}, headers)
}

// preflight returns the no-content response for an OPTIONS request.
func preflight(headers Headers) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    headers.Preflight(),
	}
}

// decodePayload parses a JSON request body. A malformed or empty body
// resolves to an empty payload, which then fails required-field validation
// rather than erroring separately.
func decodePayload(body string) map[string]any {
	var p map[string]any
	if err := json.Unmarshal([]byte(body), &p); err != nil || p == nil {
		return map[string]any{}
	}
	return p
}
