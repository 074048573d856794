package options

import "strings"

// Find returns the first option whose value equals value.
func Find(list List, value string) (Option, bool) {
	for _, opt := range list {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// LabelFor resolves value to its display label. Missing values resolve to ""
// and unmapped values to their own string form so unknown codes stay visible.
func LabelFor(list List, value any) string {
	key, ok := stringify(value)
	if !ok || key == "" {
		return ""
	}
	if opt, found := Find(list, key); found {
		return opt.Label
	}
	return key
}

// LabelsFor resolves every entry of values, keeping order, duplicates and
// unmapped entries. values may be nil, a comma separated string or a slice.
func LabelsFor(list List, values any) []string {
	keys := splitValues(values)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, LabelFor(list, key))
	}
	return out
}

// Values returns the option values in list order.
func Values(list List) []string {
	out := make([]string, 0, len(list))
	for _, opt := range list {
		out = append(out, opt.Value)
	}
	return out
}

func splitValues(values any) []any {
	switch value := values.(type) {
	case nil:
		return nil
	case string:
		parts := strings.Split(value, ",")
		out := make([]any, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
		return out
	case []any:
		return value
	case []string:
		return toAnySlice(value)
	case []int:
		return toAnySlice(value)
	case []int64:
		return toAnySlice(value)
	case []float64:
		return toAnySlice(value)
	default:
		return []any{value}
	}
}
