package ingest

import (
	"os"
	"path/filepath"
	"testing"

	domainerr "mdblog/internal/domain/errors"
)

func TestParseFrontMatter(t *testing.T) {
	raw := []byte("---\ntitle: Hello\ndate: 2024-01-02\ntags: [go, blog]\ncustom:\n  nested: 1\n---\n\n  Body text.  \n")
	fm, body, err := ParseFrontMatter(raw)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if body != "Body text." {
		t.Fatalf("body = %q", body)
	}
	if fm["title"] != "Hello" {
		t.Fatalf("title = %#v", fm["title"])
	}
	if fm["date"] != "2024-01-02" {
		t.Fatalf("date should stay a string, got %#v", fm["date"])
	}
	if tags, ok := fm.Strings("tags"); !ok || len(tags) != 2 {
		t.Fatalf("tags = %#v", fm["tags"])
	}
	if _, ok := fm.Object("custom"); !ok {
		t.Fatalf("custom = %#v", fm["custom"])
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("just text\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(fm) != 0 || body != "just text" {
		t.Fatalf("fm = %#v, body = %q", fm, body)
	}
}

func TestParseFrontMatterNonMappingCollapses(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte("---\n- a\n- b\n---\nbody"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm == nil || len(fm) != 0 {
		t.Fatalf("fm = %#v, want empty bag", fm)
	}
}

func TestParseFrontMatterMalformed(t *testing.T) {
	if _, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestDiscoverSource(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.mdx", "notes.txt", "c.markdown"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "fr"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverSource(dir)
	if err != nil {
		t.Fatalf("DiscoverSource: %v", err)
	}
	if len(files) != 2 || files[0].Slug != "a" || files[1].Slug != "b" {
		t.Fatalf("files = %+v", files)
	}
}

func TestResolveFilePrefersMarkdown(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"post.md", "post.mdx", "only.mdx"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	if path, ok, err := ResolveFile(dir, "post"); err != nil || !ok || filepath.Base(path) != "post.md" {
		t.Fatalf("ResolveFile(post) = %q, %v, %v", path, ok, err)
	}
	if path, ok, _ := ResolveFile(dir, "only"); !ok || filepath.Base(path) != "only.mdx" {
		t.Fatalf("ResolveFile(only) = %q, %v", path, ok)
	}
	if _, ok, err := ResolveFile(dir, "folder"); ok || err != nil {
		t.Fatalf("directory should count as missing, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := ResolveFile(dir, "missing"); ok || err != nil {
		t.Fatalf("ResolveFile(missing) ok=%v err=%v", ok, err)
	}
}

func TestValidateSlug(t *testing.T) {
	for _, s := range []string{"hello-world", "a&b", "2024.post"} {
		if err := ValidateSlug(s); err != nil {
			t.Errorf("ValidateSlug(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "  ", "../etc", "a/b", `a\b`, "a\x00b", "a..b"} {
		err := ValidateSlug(s)
		if domainerr.KindOf(err) != domainerr.KindInvalid {
			t.Errorf("ValidateSlug(%q) = %v, want invalid", s, err)
		}
	}
}

func TestValidateLocale(t *testing.T) {
	for _, l := range []string{"", "en", "pt-BR"} {
		if err := ValidateLocale(l); err != nil {
			t.Errorf("ValidateLocale(%q) = %v", l, err)
		}
	}
	for _, l := range []string{" ", "../fr", "fr/ca", "e\nn", "e\x00n"} {
		if domainerr.KindOf(ValidateLocale(l)) != domainerr.KindInvalid {
			t.Errorf("ValidateLocale(%q) should fail", l)
		}
	}
}
