package controls

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/estatedesk/optionkit/pkg/options"
)

//go:embed templates/*.tpl
var defaultTemplates embed.FS

// Kind selects the control template.
type Kind string

const (
	KindSelect   Kind = "select"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
)

// ParseKind maps a user supplied name to a Kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindSelect, "":
		return KindSelect, nil
	case KindRadio:
		return KindRadio, nil
	case KindCheckbox:
		return KindCheckbox, nil
	default:
		return "", fmt.Errorf("controls: unknown kind %q", raw)
	}
}

// Field is the data a control is rendered from.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	// Multiple turns a select into a multi-select.
	Multiple bool
	Options  options.List
	Selected []string
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplatesFS replaces the embedded templates. The FS must provide
// select.tpl, radio.tpl and checkbox.tpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Renderer renders option controls. It is safe for concurrent use.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New constructs a Renderer backed by the embedded templates unless
// WithTemplatesFS is supplied.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		sub, err := fs.Sub(defaultTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("controls: embedded templates: %w", err)
		}
		cfg.templates = sub
	}

	return &Renderer{
		set:       pongo2.NewSet("optionkit-controls", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render produces the markup for field using the kind template.
func (r *Renderer) Render(kind Kind, field Field) (string, error) {
	if r == nil || r.set == nil {
		return "", errors.New("controls: renderer is nil")
	}
	name := strings.TrimSpace(field.Name)
	if name == "" {
		return "", errors.New("controls: field name is required")
	}
	switch kind {
	case KindSelect, KindRadio, KindCheckbox:
	default:
		return "", fmt.Errorf("controls: unknown kind %q", kind)
	}

	tpl, err := r.template(string(kind) + ".tpl")
	if err != nil {
		return "", err
	}

	selected := make(map[string]struct{}, len(field.Selected))
	for _, value := range field.Selected {
		selected[value] = struct{}{}
	}

	grouped := kind == KindSelect && options.Grouped(field.Options)
	ctx := pongo2.Context{
		"name":        name,
		"id":          controlID(name),
		"label":       SanitizeLabel(field.Label),
		"placeholder": SanitizeLabel(field.Placeholder),
		"required":    field.Required,
		"multiple":    field.Multiple,
		"grouped":     grouped,
		"options":     views(field.Options, selected),
	}
	if grouped {
		groups := options.GroupBy(field.Options)
		out := make([]groupView, 0, len(groups))
		for _, g := range groups {
			out = append(out, groupView{Name: SanitizeLabel(g.Name), Options: views(g.Options, selected)})
		}
		ctx["groups"] = out
	}

	rendered, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("controls: execute %s: %w", kind, err)
	}
	return rendered, nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	tpl, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.templates[name]; ok {
		return tpl, nil
	}
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("controls: load template %s: %w", name, err)
	}
	r.templates[name] = tpl
	return tpl, nil
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
	Style    string
}

type groupView struct {
	Name    string
	Options []optionView
}

func views(list options.List, selected map[string]struct{}) []optionView {
	out := make([]optionView, 0, len(list))
	for _, opt := range list {
		_, isSelected := selected[opt.Value]
		out = append(out, optionView{
			Value:    opt.Value,
			Label:    SanitizeLabel(opt.Label),
			Selected: isSelected,
			Style:    style(opt),
		})
	}
	return out
}

func style(opt options.Option) string {
	var parts []string
	if color := SafeColor(opt.Color); color != "" {
		parts = append(parts, "color: "+color)
	}
	if bg := SafeColor(opt.Background); bg != "" {
		parts = append(parts, "background-color: "+bg)
	}
	return strings.Join(parts, "; ")
}

func controlID(name string) string {
	var b strings.Builder
	b.WriteString("field-")
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
