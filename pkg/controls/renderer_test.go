package controls

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/estatedesk/optionkit/pkg/options"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRender_SelectFlat(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(KindSelect, Field{
		Name:        "property.kind",
		Placeholder: "選択してください",
		Options:     options.Normalize("1:戸建,2:マンション"),
		Selected:    []string{"2"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		`<select name="property.kind" id="field-property-kind">`,
		`<option value="">選択してください</option>`,
		`<option value="1">戸建</option>`,
		`<option value="2" selected>マンション</option>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<optgroup") {
		t.Fatalf("did not expect optgroups for flat list:\n%s", out)
	}
}

func TestRender_SelectGrouped(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(KindSelect, Field{
		Name:     "features",
		Multiple: true,
		Options: options.List{
			{Value: "10", Label: "駐車場", Group: "設備"},
			{Value: "20", Label: "南向き"},
			{Value: "11", Label: "オートロック", Group: "設備"},
		},
		Selected: []string{"10", "20"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(out, " multiple") {
		t.Fatalf("expected multiple attribute:\n%s", out)
	}
	first := strings.Index(out, `<optgroup label="設備">`)
	second := strings.Index(out, `<optgroup label="その他">`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected 設備 group before その他 group:\n%s", out)
	}
	if strings.Count(out, " selected") != 2 {
		t.Fatalf("expected two selected options:\n%s", out)
	}
}

func TestRender_EscapesAndSanitizes(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(KindRadio, Field{
		Name:  "status",
		Label: "<em>状態</em>",
		Options: options.List{
			{Value: `x" onclick="alert(1)`, Label: "<script>alert(1)</script>販売中 & 公開", Color: "#fff", Background: "red; position:fixed"},
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(out, "<script") || strings.Contains(out, "<em>") {
		t.Fatalf("expected markup to be stripped:\n%s", out)
	}
	if strings.Contains(out, `onclick="alert`) {
		t.Fatalf("expected value attribute to be escaped:\n%s", out)
	}
	if !strings.Contains(out, "販売中 &amp; 公開") {
		t.Fatalf("expected escaped label text:\n%s", out)
	}
	if !strings.Contains(out, `<legend>状態</legend>`) {
		t.Fatalf("expected sanitized legend:\n%s", out)
	}
	if !strings.Contains(out, `style="color: #fff"`) || strings.Contains(out, "position") {
		t.Fatalf("expected only the safe color hint:\n%s", out)
	}
}

func TestRender_Checkbox(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(KindCheckbox, Field{
		Name:     "rights",
		Options:  options.Normalize([]string{"所有権", "借地権"}),
		Selected: []string{"借地権"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Count(out, `type="checkbox"`) != 2 {
		t.Fatalf("expected two checkboxes:\n%s", out)
	}
	if !strings.Contains(out, `value="借地権" checked`) {
		t.Fatalf("expected 借地権 to be checked:\n%s", out)
	}
}

func TestRender_Errors(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.Render(KindSelect, Field{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := r.Render(Kind("slider"), Field{Name: "x"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	var nilRenderer *Renderer
	if _, err := nilRenderer.Render(KindSelect, Field{Name: "x"}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	r, err := New(WithTemplatesFS(fstest.MapFS{
		"select.tpl": {Data: []byte(`{% for opt in options %}[{{ opt.Value }}={{ opt.Label }}]{% endfor %}`)},
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render(KindSelect, Field{Name: "k", Options: options.Normalize("a:A,b:B")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "[a=A][b=B]" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := r.Render(KindRadio, Field{Name: "k"}); err == nil {
		t.Fatalf("expected missing radio template to fail")
	}
}

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]Kind{"": KindSelect, "Radio": KindRadio, " checkbox ": KindCheckbox} {
		got, err := ParseKind(raw)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseKind("toggle"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestSafeColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#2e7d32", "green", "rgb(1, 2, 3)", "rgba(0,0,0,0.5)"} {
		if SafeColor(ok) == "" {
			t.Fatalf("expected %q to be accepted", ok)
		}
	}
	for _, bad := range []string{"", "red; x", "url(javascript:1)", "#zzz"} {
		if SafeColor(bad) != "" {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
