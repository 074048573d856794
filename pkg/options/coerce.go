package options

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// stringify coerces a scalar into its display form. The boolean reports
// whether v carried a value at all.
func stringify(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", false
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	case int:
		return strconv.Itoa(value), true
	case int8:
		return strconv.FormatInt(int64(value), 10), true
	case int16:
		return strconv.FormatInt(int64(value), 10), true
	case int32:
		return strconv.FormatInt(int64(value), 10), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case uint:
		return strconv.FormatUint(uint64(value), 10), true
	case uint8:
		return strconv.FormatUint(uint64(value), 10), true
	case uint16:
		return strconv.FormatUint(uint64(value), 10), true
	case uint32:
		return strconv.FormatUint(uint64(value), 10), true
	case uint64:
		return strconv.FormatUint(value, 10), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case fmt.Stringer:
		return value.String(), true
	default:
		return fmt.Sprint(value), true
	}
}

// String returns the display form of v, or "" when v is nil.
func String(v any) string {
	s, _ := stringify(v)
	return s
}

func firstPresent(record map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}
		return stringify(raw)
	}
	return "", false
}
