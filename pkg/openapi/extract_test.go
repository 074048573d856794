package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/estatedesk/optionkit/pkg/options"
)

const propertyDocument = `{
  "openapi": "3.0.3",
  "info": { "title": "Properties", "version": "1.0.0" },
  "paths": {
    "/properties": {
      "get": {
        "operationId": "listProperties",
        "parameters": [
          { "name": "status", "in": "query", "schema": { "type": "string", "enum": ["open", "closed"] } },
          { "name": "page", "in": "query", "schema": { "type": "integer" } },
          { "name": "kind", "in": "query", "x-options": "1:戸建,2:マンション", "schema": { "type": "string" } }
        ],
        "responses": { "200": { "description": "ok" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Property": {
        "type": "object",
        "properties": {
          "kind": {
            "type": "string",
            "enum": ["1", "2"],
            "x-options": [{ "id": 1, "name": "戸建" }, { "id": 2, "name": "マンション" }]
          },
          "structure": { "type": "string", "enum": ["RC", "SRC", "W"] },
          "features": {
            "type": "array",
            "items": { "type": "string", "x-options": "10:駐車場,11:オートロック" }
          },
          "title": { "type": "string" }
        }
      }
    }
  }
}`

func TestExtract_PrefersExtensionOverEnum(t *testing.T) {
	doc, err := NewDocument(SourceFromFile("property.json"), []byte(propertyDocument))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	fields, err := Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []FieldOptions{
		{Key: "Property.features", Origin: OriginExtension, Options: options.List{
			{Value: "10", Label: "駐車場"},
			{Value: "11", Label: "オートロック"},
		}},
		{Key: "Property.kind", Origin: OriginExtension, Options: options.List{
			{Value: "1", Label: "戸建"},
			{Value: "2", Label: "マンション"},
		}},
		{Key: "Property.structure", Origin: OriginEnum, Options: options.List{
			{Value: "RC", Label: "RC"},
			{Value: "SRC", Label: "SRC"},
			{Value: "W", Label: "W"},
		}},
		{Key: "listProperties.kind", Origin: OriginExtension, Options: options.List{
			{Value: "1", Label: "戸建"},
			{Value: "2", Label: "マンション"},
		}},
		{Key: "listProperties.status", Origin: OriginEnum, Options: options.List{
			{Value: "open", Label: "open"},
			{Value: "closed", Label: "closed"},
		}},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_CustomExtensionWithoutParameters(t *testing.T) {
	document := strings.ReplaceAll(propertyDocument, `"x-options"`, `"x-choices"`)
	doc, err := NewDocument(SourceFromFS("property.json"), []byte(document))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	fields, err := Extract(context.Background(), doc, WithExtensionKey("x-choices"), WithoutParameters())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	if diff := cmp.Diff([]string{"Property.features", "Property.kind", "Property.structure"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_InvalidDocument(t *testing.T) {
	doc, err := NewDocument(SourceFromFile("bad.json"), []byte("{not json"))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if _, err := Extract(context.Background(), doc); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestLoader_FSAndHTTP(t *testing.T) {
	ctx := context.Background()

	fsLoader := NewLoader(WithFileSystem(fstest.MapFS{
		"specs/property.json": {Data: []byte(propertyDocument)},
	}))
	doc, err := fsLoader.Load(ctx, SourceFromFS("specs/property.json"))
	if err != nil {
		t.Fatalf("fs load: %v", err)
	}
	if doc.Source().Kind() != SourceKindFS {
		t.Fatalf("unexpected source kind %q", doc.Source().Kind())
	}

	if _, err := fsLoader.Load(ctx, SourceFromURL("http://example.test/spec.json")); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/spec.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(propertyDocument))
	}))
	defer srv.Close()

	httpLoader := NewLoader(WithHTTPClient(srv.Client()))
	remote, err := httpLoader.Load(ctx, SourceFromURL(srv.URL+"/spec.json"))
	if err != nil {
		t.Fatalf("http load: %v", err)
	}
	fields, err := Extract(ctx, remote)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(fields))
	}

	if _, err := httpLoader.Load(ctx, SourceFromURL(srv.URL+"/missing.json")); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestParseSource(t *testing.T) {
	if ParseSource("  ") != nil {
		t.Fatalf("expected nil source for blank input")
	}
	if got := ParseSource("https://api.example.test/openapi.json").Kind(); got != SourceKindURL {
		t.Fatalf("expected url source, got %q", got)
	}
	if got := ParseSource("./openapi.yaml").Kind(); got != SourceKindFile {
		t.Fatalf("expected file source, got %q", got)
	}
}
