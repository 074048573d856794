package optionsapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/estatedesk/optionkit/pkg/options"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Data options.List `json:"data"`
}

type groupsResponse struct {
	Groups options.Groups `json:"groups"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value; defaults and clamps are re-applied.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if opts.Provider == nil {
			opts.Logger.Error("optionsapi: no provider configured")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		query := r.URL.Query()
		field := strings.TrimSpace(query.Get(opts.FieldParam))
		if field == "" {
			http.Error(w, "missing "+opts.FieldParam+" parameter", http.StatusBadRequest)
			return
		}

		list, ok := opts.Provider.Options(field)
		if !ok {
			opts.Logger.Debug("optionsapi: unknown field", zap.String("field", field))
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		results := Search(list, query.Get(opts.SearchParam), parseInt(query.Get(opts.LimitParam)), opts)
		grouped := parseBool(query.Get(opts.GroupedParam))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		var err error
		if grouped {
			err = enc.Encode(groupsResponse{Groups: options.GroupBy(results)})
		} else {
			err = enc.Encode(optionsResponse{Data: results})
		}
		if err != nil {
			opts.Logger.Warn("optionsapi: write response", zap.String("field", field), zap.Error(err))
		}
	})
}

// Search filters list by query and applies the clamped limit.
func Search(list options.List, query string, limit int, opts Options) options.List {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return options.List{}
	}
	results := options.Filter(list, query)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}
