package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Normalizer converts raw option metadata into a List. The zero value is
// usable and logs through zap.L().
type Normalizer struct {
	logger *zap.Logger
	fields Fields
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLogger routes diagnostics to logger instead of the global zap logger.
func WithLogger(logger *zap.Logger) NormalizerOption {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// WithFields overrides the record fallback keys. Empty key lists keep their
// defaults.
func WithFields(fields Fields) NormalizerOption {
	return func(n *Normalizer) {
		n.fields = fields
	}
}

// NewNormalizer builds a Normalizer from DefaultFields plus any overrides.
func NewNormalizer(fns ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(n)
	}
	n.fields = n.fields.withDefaults()
	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize converts v into a List using the default normalizer.
func Normalize(v any) List {
	return defaultNormalizer.Normalize(v)
}

// NormalizeInput converts an already classified input using the default
// normalizer.
func NormalizeInput(in Input) List {
	return defaultNormalizer.NormalizeInput(in)
}

// IsEmpty reports whether v normalizes to an empty list.
func IsEmpty(v any) bool {
	return defaultNormalizer.IsEmpty(v)
}

// Normalize converts v into a List. It never fails; unsupported values yield
// an empty list.
func (n *Normalizer) Normalize(v any) List {
	return n.NormalizeInput(Classify(v))
}

// IsEmpty reports whether v normalizes to an empty list.
func (n *Normalizer) IsEmpty(v any) bool {
	return len(n.Normalize(v)) == 0
}

// NormalizeInput dispatches on the input shape.
func (n *Normalizer) NormalizeInput(in Input) List {
	switch value := in.(type) {
	case nil, Absent:
		return List{}
	case Canonical:
		return value.Options.Clone()
	case Sequence:
		return n.fromSequence(value.Items)
	case Text:
		return n.fromText(value.Raw)
	case Unrecognized:
		n.log().Warn("options: unrecognized input, returning empty list",
			zap.String("type", fmt.Sprintf("%T", value.Value)))
		return List{}
	default:
		n.log().Warn("options: unsupported input variant",
			zap.String("type", fmt.Sprintf("%T", in)))
		return List{}
	}
}

func (n *Normalizer) fromSequence(items []any) List {
	out := make(List, 0, len(items))
	for _, item := range items {
		switch value := item.(type) {
		case nil:
			continue
		case map[string]any:
			out = append(out, n.fromRecord(value))
		case map[string]string:
			record := make(map[string]any, len(value))
			for k, v := range value {
				record[k] = v
			}
			out = append(out, n.fromRecord(record))
		case Option:
			out = append(out, value)
		case *Option:
			if value == nil {
				continue
			}
			out = append(out, *value)
		default:
			s, _ := stringify(value)
			out = append(out, Option{Value: s, Label: s})
		}
	}
	return out
}

func (n *Normalizer) fromRecord(record map[string]any) Option {
	fields := n.fieldSet()
	value, _ := firstPresent(record, fields.Value)
	label, ok := firstPresent(record, fields.Label)
	if !ok {
		label = value
	}
	group, _ := firstPresent(record, fields.Group)
	color, _ := firstPresent(record, fields.Color)
	background, _ := firstPresent(record, fields.Background)
	return Option{
		Value:      value,
		Label:      label,
		Group:      group,
		Color:      color,
		Background: background,
	}
}

func (n *Normalizer) fromText(raw string) List {
	text := strings.TrimSpace(raw)
	if text == "" {
		return List{}
	}
	if strings.HasPrefix(text, "[") {
		var decoded []any
		if err := json.Unmarshal([]byte(text), &decoded); err == nil {
			return n.NormalizeInput(classifySequence(decoded))
		}
	}
	return parseDelimited(text)
}

// parseDelimited reads "code:label,code:label". Entries without a colon use
// the entry for both value and label; an empty label falls back to the code.
func parseDelimited(text string) List {
	parts := strings.Split(text, ",")
	out := make(List, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		code, label, found := strings.Cut(entry, ":")
		if !found {
			out = append(out, Option{Value: entry, Label: entry})
			continue
		}
		code = strings.TrimSpace(code)
		label = strings.TrimSpace(label)
		if label == "" {
			label = code
		}
		out = append(out, Option{Value: code, Label: label})
	}
	return out
}

func (n *Normalizer) fieldSet() Fields {
	if n == nil || len(n.fields.Value) == 0 {
		return defaultFields
	}
	return n.fields
}

func (n *Normalizer) log() *zap.Logger {
	if n == nil || n.logger == nil {
		return zap.L()
	}
	return n.logger
}

var defaultFields = DefaultFields()
