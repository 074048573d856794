package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/estatedesk/optionkit/pkg/options"
)

// DefaultExtensionKey is the schema extension carrying raw option metadata.
const DefaultExtensionKey = "x-options"

// FieldOptions is the option list declared for one schema property or
// operation parameter.
type FieldOptions struct {
	// Key is "Schema.property" for component schemas and
	// "operationId.parameter" for operation parameters.
	Key     string       `json:"key" yaml:"key"`
	Origin  string       `json:"origin" yaml:"origin"`
	Options options.List `json:"options" yaml:"options"`
}

// Origin values reported on FieldOptions.
const (
	OriginExtension = "extension"
	OriginEnum      = "enum"
)

// ExtractionOptions configures Extract.
type ExtractionOptions struct {
	ExtensionKey string
	Normalizer   *options.Normalizer
	// SkipParameters ignores operation parameters.
	SkipParameters bool
}

// ExtractOption mutates ExtractionOptions.
type ExtractOption func(*ExtractionOptions)

// WithExtensionKey reads raw options from key instead of x-options.
func WithExtensionKey(key string) ExtractOption {
	return func(o *ExtractionOptions) {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			o.ExtensionKey = trimmed
		}
	}
}

// WithNormalizer normalizes extracted values with n.
func WithNormalizer(n *options.Normalizer) ExtractOption {
	return func(o *ExtractionOptions) {
		o.Normalizer = n
	}
}

// WithoutParameters restricts extraction to component schemas.
func WithoutParameters() ExtractOption {
	return func(o *ExtractionOptions) {
		o.SkipParameters = true
	}
}

// Extract parses doc and returns every declared option list sorted by key.
// The extension wins over enum; array properties fall back to their items.
func Extract(ctx context.Context, doc Document, fns ...ExtractOption) ([]FieldOptions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi extract: document payload is empty")
	}

	cfg := ExtractionOptions{ExtensionKey: DefaultExtensionKey}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = options.NewNormalizer()
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi extract: load document: %w", err)
	}

	var out []FieldOptions
	if spec.Components != nil {
		for schemaName, ref := range spec.Components.Schemas {
			if ref == nil || ref.Value == nil {
				continue
			}
			for propName, prop := range ref.Value.Properties {
				if field, ok := cfg.fieldOptions(schemaName+"."+propName, prop); ok {
					out = append(out, field)
				}
			}
		}
	}

	if !cfg.SkipParameters && spec.Paths != nil {
		for _, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for _, op := range item.Operations() {
				if op == nil || op.OperationID == "" {
					continue
				}
				for _, param := range op.Parameters {
					if param == nil || param.Value == nil {
						continue
					}
					field, ok := cfg.parameterOptions(op.OperationID+"."+param.Value.Name, param.Value)
					if ok {
						out = append(out, field)
					}
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (cfg ExtractionOptions) parameterOptions(key string, param *openapi3.Parameter) (FieldOptions, bool) {
	if value, ok := param.Extensions[cfg.ExtensionKey]; ok && value != nil {
		return FieldOptions{Key: key, Origin: OriginExtension, Options: cfg.Normalizer.Normalize(value)}, true
	}
	return cfg.fieldOptions(key, param.Schema)
}

func (cfg ExtractionOptions) fieldOptions(key string, ref *openapi3.SchemaRef) (FieldOptions, bool) {
	if ref == nil || ref.Value == nil {
		return FieldOptions{}, false
	}
	schema := ref.Value

	if value, ok := schema.Extensions[cfg.ExtensionKey]; ok && value != nil {
		return FieldOptions{Key: key, Origin: OriginExtension, Options: cfg.Normalizer.Normalize(value)}, true
	}
	if len(schema.Enum) > 0 {
		return FieldOptions{Key: key, Origin: OriginEnum, Options: cfg.Normalizer.Normalize(schema.Enum)}, true
	}
	if schema.Items != nil && schema.Items.Value != nil {
		return cfg.fieldOptions(key, schema.Items)
	}
	return FieldOptions{}, false
}
