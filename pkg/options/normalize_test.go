package options

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalize_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  List
	}{
		{name: "nil", input: nil, want: List{}},
		{name: "empty string", input: "", want: List{}},
		{name: "blank string", input: "   ", want: List{}},
		{
			name:  "canonical list",
			input: List{{Value: "1", Label: "A"}, {Value: "2", Label: "B"}},
			want:  List{{Value: "1", Label: "A"}, {Value: "2", Label: "B"}},
		},
		{
			name:  "code label text",
			input: "1:A,2:B",
			want:  List{{Value: "1", Label: "A"}, {Value: "2", Label: "B"}},
		},
		{
			name:  "plain text entries",
			input: "A,B",
			want:  List{{Value: "A", Label: "A"}, {Value: "B", Label: "B"}},
		},
		{
			name:  "text trims and drops empty entries",
			input: " 1 : A , ,2:, 3 ",
			want: List{
				{Value: "1", Label: "A"},
				{Value: "2", Label: "2"},
				{Value: "3", Label: "3"},
			},
		},
		{
			name:  "splits on first colon only",
			input: "10:09:00 open",
			want:  List{{Value: "10", Label: "09:00 open"}},
		},
		{
			name:  "json text",
			input: `[{"value":"1","label":"A"}]`,
			want:  List{{Value: "1", Label: "A"}},
		},
		{
			name:  "json text with legacy keys",
			input: `[{"id":7,"name":"駐車場","group_name":"設備"}]`,
			want:  List{{Value: "7", Label: "駐車場", Group: "設備"}},
		},
		{
			name:  "malformed json falls back to delimiters",
			input: "[invalid",
			want:  List{{Value: "[invalid", Label: "[invalid"}},
		},
		{
			name:  "malformed json with colon",
			input: "[1:A,2:B",
			want:  List{{Value: "[1", Label: "A"}, {Value: "2", Label: "B"}},
		},
		{
			name:  "primitive sequence",
			input: []any{"a", 1, 2.5, true, nil},
			want: List{
				{Value: "a", Label: "a"},
				{Value: "1", Label: "1"},
				{Value: "2.5", Label: "2.5"},
				{Value: "true", Label: "true"},
			},
		},
		{
			name:  "string slice",
			input: []string{"戸建", "マンション"},
			want:  List{{Value: "戸建", Label: "戸建"}, {Value: "マンション", Label: "マンション"}},
		},
		{
			name: "record fallbacks",
			input: []map[string]any{
				{"code": "R1", "display_name": "旧表示"},
				{"id": 3},
				{"value": nil, "id": "x", "label": nil, "name": "named"},
				{},
			},
			want: List{
				{Value: "R1", Label: "旧表示"},
				{Value: "3", Label: "3"},
				{Value: "x", Label: "named"},
				{Value: "", Label: ""},
			},
		},
		{
			name: "display hints pass through",
			input: []any{
				map[string]any{"id": 1, "name": "販売中", "color": "#fff", "background": "green"},
			},
			want: List{{Value: "1", Label: "販売中", Color: "#fff", Background: "green"}},
		},
		{
			name:  "string records",
			input: []map[string]string{{"code": "A", "name": "Alpha", "group": "G"}},
			want:  List{{Value: "A", Label: "Alpha", Group: "G"}},
		},
		{
			name:  "raw json message",
			input: json.RawMessage(`"1:A"`),
			want:  List{{Value: "1", Label: "A"}},
		},
		{
			name:  "raw json null",
			input: json.RawMessage(`null`),
			want:  List{},
		},
		{
			name:  "bytes",
			input: []byte("x:y"),
			want:  List{{Value: "x", Label: "y"}},
		},
		{name: "number", input: 42, want: List{}},
		{name: "single record", input: map[string]any{"value": "1"}, want: List{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize(%#v) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNormalize_CanonicalRequiresEveryElement(t *testing.T) {
	input := []any{
		map[string]any{"value": "1", "label": "A", "group_name": "ignored"},
		map[string]any{"id": 2, "name": "B", "group_name": "G"},
	}

	if _, ok := Classify(input).(Sequence); !ok {
		t.Fatalf("expected mixed records to classify as Sequence, got %T", Classify(input))
	}

	got := Normalize(input)
	want := List{
		{Value: "1", Label: "A", Group: "ignored"},
		{Value: "2", Label: "B", Group: "G"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_CanonicalRecordsKeepOnlyCanonicalKeys(t *testing.T) {
	input := []any{
		map[string]any{"value": "1", "label": "A", "group": "G", "group_name": "legacy"},
		map[string]any{"value": "2", "label": "B"},
	}

	in := Classify(input)
	if _, ok := in.(Canonical); !ok {
		t.Fatalf("expected Canonical, got %T", in)
	}

	got := NormalizeInput(in)
	want := List{{Value: "1", Label: "A", Group: "G"}, {Value: "2", Label: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_NonStringValueIsNotCanonical(t *testing.T) {
	input := []any{map[string]any{"value": 1, "label": "A"}}
	if _, ok := Classify(input).(Sequence); !ok {
		t.Fatalf("expected numeric value to demote to Sequence")
	}
	if diff := cmp.Diff(List{{Value: "1", Label: "A"}}, Normalize(input)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_FixedPoint(t *testing.T) {
	inputs := []any{
		List{{Value: "1", Label: "A", Group: "G"}},
		"1:A,2:B",
		`[{"id":1,"name":"x"}]`,
		[]any{"a", map[string]any{"code": "b"}},
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("Normalize not idempotent for %#v (-once +twice):\n%s", input, diff)
		}
	}
}

func TestNormalize_ReturnsFreshList(t *testing.T) {
	source := List{{Value: "1", Label: "A"}}
	got := Normalize(source)
	got[0].Label = "changed"
	if source[0].Label != "A" {
		t.Fatalf("expected source list to be untouched, got %q", source[0].Label)
	}
}

func TestNormalize_LogsUnrecognizedInput(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := NewNormalizer(WithLogger(zap.New(core)))

	got := n.Normalize(struct{ A int }{A: 1})
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one diagnostic entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["type"] != "struct { A int }" {
		t.Fatalf("unexpected type field: %#v", entry.ContextMap())
	}

	n.Normalize("1:A")
	n.Normalize(nil)
	if logs.Len() != 1 {
		t.Fatalf("expected recognized inputs not to log, got %d entries", logs.Len())
	}
}

func TestNormalizer_WithFields(t *testing.T) {
	n := NewNormalizer(
		WithLogger(zap.NewNop()),
		WithFields(Fields{Value: []string{"pref_code"}, Label: []string{"pref_name"}}),
	)

	got := n.Normalize([]any{
		map[string]any{"pref_code": 13, "pref_name": "東京都", "group": "関東"},
	})
	want := List{{Value: "13", Label: "東京都", Group: "関東"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNilNormalizerUsesDefaults(t *testing.T) {
	var n *Normalizer
	got := n.Normalize([]any{map[string]any{"id": "a"}})
	if diff := cmp.Diff(List{{Value: "a", Label: "a"}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIsEmpty(t *testing.T) {
	cases := map[string]struct {
		input any
		want  bool
	}{
		"nil":           {input: nil, want: true},
		"blank":         {input: " ", want: true},
		"code label":    {input: "1:A", want: false},
		"empty slice":   {input: []any{}, want: true},
		"only nils":     {input: []any{nil, nil}, want: true},
		"unrecognized":  {input: 3.14, want: true},
		"canonical one": {input: List{{Value: "", Label: ""}}, want: false},
	}
	for name, tc := range cases {
		if got := IsEmpty(tc.input); got != tc.want {
			t.Fatalf("%s: IsEmpty(%#v) = %v, want %v", name, tc.input, got, tc.want)
		}
	}
}
