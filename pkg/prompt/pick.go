package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/estatedesk/optionkit/pkg/options"
)

// ErrNoOptions is returned when there is nothing to pick from.
var ErrNoOptions = errors.New("prompt: no options to pick from")

// Pick asks for one option and returns its value. current preselects an
// entry when it matches an option value.
func Pick(ctx context.Context, driver PromptDriver, message string, list options.List, current string) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is nil")
	}
	if len(list) == 0 {
		return "", ErrNoOptions
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      displayLabels(list),
		DefaultIndex: indexOfValue(list, current),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(list) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return list[idx].Value, nil
}

// PickMany asks for any number of options and returns their values in list
// order. current preselects matching options.
func PickMany(ctx context.Context, driver PromptDriver, message string, list options.List, current []string) ([]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	if len(list) == 0 {
		return nil, ErrNoOptions
	}

	indices, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  displayLabels(list),
		Defaults: indicesOfValues(list, current),
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(list) {
			out = append(out, list[idx].Value)
		}
	}
	return out, nil
}

// displayLabels renders one prompt line per option. survey identifies answers
// by their text, so repeated labels are disambiguated with the value.
func displayLabels(list options.List) []string {
	counts := make(map[string]int, len(list))
	for _, opt := range list {
		counts[label(opt)]++
	}
	out := make([]string, len(list))
	for i, opt := range list {
		text := label(opt)
		if counts[text] > 1 {
			text = fmt.Sprintf("%s (%s)", text, opt.Value)
		}
		if opt.Group != "" {
			text = opt.Group + " / " + text
		}
		out[i] = text
	}
	return out
}

func label(opt options.Option) string {
	if opt.Label != "" {
		return opt.Label
	}
	return opt.Value
}

func indexOfValue(list options.List, value string) int {
	if value == "" {
		return -1
	}
	for i, opt := range list {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func indicesOfValues(list options.List, values []string) []int {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	var out []int
	for i, opt := range list {
		if _, ok := set[opt.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}
