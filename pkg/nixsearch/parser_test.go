package nixsearch

import "testing"

const sampleResponse = `{
  "hits": {
    "total": {"value": 128, "relation": "eq"},
    "hits": [
      {
        "_source": {
          "package_attr_name": "python312",
          "package_pversion": "3.12.8",
          "package_description": "A high-level dynamically-typed programming language",
          "package_platforms": ["x86_64-linux", "aarch64-darwin"]
        }
      },
      {
        "_source": {
          "package_attr_name": "python312Full",
          "package_pversion": "",
          "package_description": null,
          "package_platforms": []
        }
      }
    ]
  }
}`

func TestParseResult(t *testing.T) {
	res, err := parseResult([]byte(sampleResponse))
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}

	if res.Total != 128 {
		t.Errorf("Total = %d, want 128", res.Total)
	}
	if len(res.Packages) != 2 {
		t.Fatalf("hit count = %d, want 2", len(res.Packages))
	}

	first := res.Packages[0]
	if first.AttrName != "python312" {
		t.Errorf("AttrName = %q, want python312", first.AttrName)
	}
	if first.Version != "3.12.8" {
		t.Errorf("Version = %q, want 3.12.8", first.Version)
	}
	if first.Description != "A high-level dynamically-typed programming language" {
		t.Errorf("Description = %q", first.Description)
	}
	if len(first.Platforms) != 2 || first.Platforms[0] != "x86_64-linux" {
		t.Errorf("Platforms = %v", first.Platforms)
	}

	// Missing optional fields default to empty
	second := res.Packages[1]
	if second.AttrName != "python312Full" {
		t.Errorf("AttrName = %q, want python312Full", second.AttrName)
	}
	if second.Version != "" || second.Description != "" {
		t.Errorf("optional fields = %q/%q, want empty", second.Version, second.Description)
	}
}

func TestParseResultEmpty(t *testing.T) {
	res, err := parseResult([]byte(`{"hits": {"total": {"value": 0}, "hits": []}}`))
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if res.Total != 0 || len(res.Packages) != 0 {
		t.Errorf("empty response parsed to %+v", res)
	}
}

func TestParseResultMalformed(t *testing.T) {
	if _, err := parseResult([]byte(`<html>gateway timeout</html>`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
