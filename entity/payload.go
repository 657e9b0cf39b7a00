package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Payload is a loosely-typed client payload, typically a decoded JSON body.
type Payload map[string]any

// lookup returns the value under the first alias that is present.
// Presence means the key exists, even if its value is empty.
func (p Payload) lookup(aliases ...string) (any, bool) {
	for _, key := range aliases {
		if v, ok := p[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str returns the trimmed string under the first alias holding a non-empty
// value, falling through blanks the way clients expect ("area": "" plus
// "delivery_area": "Downtown" resolves to "Downtown").
func (p Payload) str(aliases ...string) string {
	for _, key := range aliases {
		v, ok := p[key]
		if !ok || v == nil {
			continue
		}
		var s string
		if str, ok := v.(string); ok {
			s = str
		} else {
			s = fmt.Sprint(v)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// toFloat coerces a JSON value to float64.
func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case json.Number:
		return val.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, fmt.Errorf("cannot coerce %T to float", v)
	}
}

// toInt coerces a JSON value to int. Fractional numbers truncate; fractional
// strings do not parse.
func toInt(v any) (int, error) {
	switch val := v.(type) {
	case float64:
		return int(val), nil
	case float32:
		return int(val), nil
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}
