package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeKnownSynonyms(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)

	cases := map[string]string{
		"ReactJS": "React",
		"K8s":     "Kubernetes",
		"JS":      "JavaScript",
		"Golang":  "Go",
		"Mongo":   "MongoDB",
	}
	for in, want := range cases {
		if got := taxonomy.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCaseInsensitiveAliases(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)

	if got := taxonomy.Normalize("reactjs"); got != "React" {
		t.Fatalf("Normalize(\"reactjs\") = %q, want React", got)
	}
	if got := taxonomy.Normalize("k8S"); got != "Kubernetes" {
		t.Fatalf("Normalize(\"k8S\") = %q, want Kubernetes", got)
	}
}

func TestNormalizeIdentityForUnknownSkill(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)

	if got := taxonomy.Normalize("COBOL"); got != "COBOL" {
		t.Fatalf("expected identity for unknown skill, got %q", got)
	}
}

func TestNormalizeKeyLowercases(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)

	if got := taxonomy.NormalizeKey("ReactJS"); got != "react" {
		t.Fatalf("NormalizeKey(\"ReactJS\") = %q, want react", got)
	}
	if got := taxonomy.NormalizeKey("Python"); got != "python" {
		t.Fatalf("NormalizeKey(\"Python\") = %q, want python", got)
	}
}

func TestLoadSynonymsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.json")
	if err := os.WriteFile(path, []byte(`{"Rusty": "Rust"}`), 0644); err != nil {
		t.Fatal(err)
	}

	taxonomy := NewTaxonomyService("", path, nil)

	if got := taxonomy.Normalize("Rusty"); got != "Rust" {
		t.Fatalf("expected file synonyms to be loaded, got %q", got)
	}
	// File replaces the built-in table entirely.
	if got := taxonomy.Normalize("ReactJS"); got != "ReactJS" {
		t.Fatalf("expected built-in synonyms replaced, got %q", got)
	}
}

func TestUnreadableSynonymsFileFallsBack(t *testing.T) {
	taxonomy := NewTaxonomyService("", "/nonexistent/synonyms.json", nil)

	if got := taxonomy.Normalize("ReactJS"); got != "React" {
		t.Fatalf("expected built-in fallback, got %q", got)
	}
}

func TestDefaultTaxonomyHasAllCategories(t *testing.T) {
	taxonomy := NewTaxonomyService("", "", nil)

	skills := taxonomy.Skills()
	if len(skills) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(skills))
	}
	for category, names := range skills {
		if len(names) == 0 {
			t.Errorf("category %q is empty", category)
		}
	}
}
