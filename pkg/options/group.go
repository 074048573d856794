package options

// Group is one bucket produced by GroupBy.
type Group struct {
	Name    string `json:"name" yaml:"name"`
	Options List   `json:"options" yaml:"options"`
}

// Groups keeps buckets in first-occurrence order.
type Groups []Group

// GroupBy buckets options by Group, using DefaultGroup for ungrouped entries.
// Bucket order follows the first occurrence of each name and options keep
// their relative order within a bucket.
func GroupBy(list List) Groups {
	out := make(Groups, 0)
	index := make(map[string]int)
	for _, opt := range list {
		name := opt.Group
		if name == "" {
			name = DefaultGroup
		}
		pos, ok := index[name]
		if !ok {
			pos = len(out)
			index[name] = pos
			out = append(out, Group{Name: name})
		}
		out[pos].Options = append(out[pos].Options, opt)
	}
	return out
}

// Lookup returns the options stored under name.
func (g Groups) Lookup(name string) (List, bool) {
	for _, group := range g {
		if group.Name == name {
			return group.Options, true
		}
	}
	return nil, false
}

// Names returns the bucket names in order.
func (g Groups) Names() []string {
	out := make([]string, 0, len(g))
	for _, group := range g {
		out = append(out, group.Name)
	}
	return out
}

// Map flattens the groups into a map; iteration order is lost.
func (g Groups) Map() map[string]List {
	out := make(map[string]List, len(g))
	for _, group := range g {
		out[group.Name] = group.Options
	}
	return out
}

// Grouped reports whether any option in list carries an explicit group.
func Grouped(list List) bool {
	for _, opt := range list {
		if opt.Group != "" {
			return true
		}
	}
	return false
}
