package options

import "encoding/json"

// Input is the closed set of raw option representations. Classify produces
// one of Absent, Canonical, Sequence, Text or Unrecognized.
type Input interface {
	input()
}

// Absent is the "no value" shape.
type Absent struct{}

// Canonical holds a list whose every element already had the Option shape.
type Canonical struct {
	Options List
}

// Sequence holds arbitrary records or scalars that still need mapping.
type Sequence struct {
	Items []any
}

// Text holds a JSON encoded array or a comma separated "code:label" list.
type Text struct {
	Raw string
}

// Unrecognized wraps values of any other type.
type Unrecognized struct {
	Value any
}

func (Absent) input()       {}
func (Canonical) input()    {}
func (Sequence) input()     {}
func (Text) input()         {}
func (Unrecognized) input() {}

// Classify maps a raw value onto the Input union. Sequences are reported as
// Canonical only when every element conforms; a single odd element demotes the
// whole sequence to Sequence.
func Classify(v any) Input {
	switch value := v.(type) {
	case nil:
		return Absent{}
	case Input:
		return value
	case List:
		return Canonical{Options: value.Clone()}
	case []Option:
		return Canonical{Options: List(value).Clone()}
	case string:
		return Text{Raw: value}
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			return Text{Raw: string(value)}
		}
		return Classify(decoded)
	case []byte:
		return Text{Raw: string(value)}
	case []any:
		return classifySequence(value)
	case []string:
		return classifySequence(toAnySlice(value))
	case []int:
		return classifySequence(toAnySlice(value))
	case []int64:
		return classifySequence(toAnySlice(value))
	case []float64:
		return classifySequence(toAnySlice(value))
	case []bool:
		return classifySequence(toAnySlice(value))
	case []map[string]any:
		return classifySequence(toAnySlice(value))
	case []map[string]string:
		return classifySequence(toAnySlice(value))
	default:
		return Unrecognized{Value: v}
	}
}

func classifySequence(items []any) Input {
	list := make(List, 0, len(items))
	for _, item := range items {
		opt, ok := canonicalOption(item)
		if !ok {
			return Sequence{Items: items}
		}
		list = append(list, opt)
	}
	return Canonical{Options: list}
}

func canonicalOption(item any) (Option, bool) {
	switch value := item.(type) {
	case Option:
		return value, true
	case *Option:
		if value == nil {
			return Option{}, false
		}
		return *value, true
	case map[string]any:
		val, ok := value["value"].(string)
		if !ok {
			return Option{}, false
		}
		label, ok := value["label"].(string)
		if !ok {
			return Option{}, false
		}
		opt := Option{Value: val, Label: label}
		opt.Group, _ = value["group"].(string)
		opt.Color, _ = value["color"].(string)
		opt.Background, _ = value["background"].(string)
		return opt, true
	case map[string]string:
		val, ok := value["value"]
		if !ok {
			return Option{}, false
		}
		label, ok := value["label"]
		if !ok {
			return Option{}, false
		}
		return Option{
			Value:      val,
			Label:      label,
			Group:      value["group"],
			Color:      value["color"],
			Background: value["background"],
		}, true
	default:
		return Option{}, false
	}
}

func toAnySlice[T any](items []T) []any {
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
