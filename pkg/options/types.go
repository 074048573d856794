package options

// DefaultGroup names the bucket GroupBy uses for options without a group.
const DefaultGroup = "その他"

// Option is a single selectable choice.
type Option struct {
	Value      string `json:"value" yaml:"value"`
	Label      string `json:"label" yaml:"label"`
	Group      string `json:"group,omitempty" yaml:"group,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// List is an ordered option sequence; order is display order.
type List []Option

// Clone returns a copy that does not share the receiver's backing array.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	return append(List{}, l...)
}

// Fields lists, in precedence order, the record keys consulted when a generic
// sequence element is converted into an Option.
type Fields struct {
	Value      []string
	Label      []string
	Group      []string
	Color      []string
	Background []string
}

// DefaultFields returns the fallback keys understood by the backend metadata:
// value/id/code for values, label/name/display_name for labels and
// group/group_name for groups.
func DefaultFields() Fields {
	return Fields{
		Value:      []string{"value", "id", "code"},
		Label:      []string{"label", "name", "display_name"},
		Group:      []string{"group", "group_name"},
		Color:      []string{"color"},
		Background: []string{"background"},
	}
}

func (f Fields) withDefaults() Fields {
	defaults := DefaultFields()
	if len(f.Value) == 0 {
		f.Value = defaults.Value
	}
	if len(f.Label) == 0 {
		f.Label = defaults.Label
	}
	if len(f.Group) == 0 {
		f.Group = defaults.Group
	}
	if len(f.Color) == 0 {
		f.Color = defaults.Color
	}
	if len(f.Background) == 0 {
		f.Background = defaults.Background
	}
	return f.clone()
}

func (f Fields) clone() Fields {
	return Fields{
		Value:      append([]string(nil), f.Value...),
		Label:      append([]string(nil), f.Label...),
		Group:      append([]string(nil), f.Group...),
		Color:      append([]string(nil), f.Color...),
		Background: append([]string(nil), f.Background...),
	}
}
