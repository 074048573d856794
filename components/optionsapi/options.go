package optionsapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/estatedesk/optionkit/pkg/options"
)

// Provider resolves a field key to its normalized options.
type Provider interface {
	Options(key string) (options.List, bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(key string) (options.List, bool)

// Options implements Provider.
func (fn ProviderFunc) Options(key string) (options.List, bool) {
	return fn(key)
}

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	FieldParam   string
	SearchParam  string
	LimitParam   string
	GroupedParam string
	DefaultLimit int
	MaxLimit     int
	Guard        GuardFunc
	Logger       *zap.Logger

	Provider Provider
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    "/api/options",
		FieldParam:   "field",
		SearchParam:  "q",
		LimitParam:   "limit",
		GroupedParam: "grouped",
		DefaultLimit: 50,
		MaxLimit:     500,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	defaults := DefaultOptions()
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaults.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaults.MaxLimit
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaults.RoutePath
	}
	if opts.FieldParam == "" {
		opts.FieldParam = defaults.FieldParam
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaults.SearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = defaults.LimitParam
	}
	if opts.GroupedParam == "" {
		opts.GroupedParam = defaults.GroupedParam
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithFieldParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FieldParam = name
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithGroupedParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.GroupedParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithProvider(provider Provider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
