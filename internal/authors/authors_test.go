package authors

import (
	"testing"

	"mdblog/internal/domain/content"
)

var roster = []content.Author{
	{Name: "John Doe", Email: "j@x.com", Twitter: "@johnd"},
	{Name: "Jane Roe", URL: "https://jane.example.com"},
}

func TestNormalizePromotesRosterMatch(t *testing.T) {
	got := Normalize("John Doe", nil, roster[:1])
	if len(got) != 1 || !got[0].IsDetailed() {
		t.Fatalf("Normalize = %#v, want one detailed ref", got)
	}
	a, _ := got[0].Detail()
	if a.Email != "j@x.com" {
		t.Fatalf("email = %q", a.Email)
	}
}

func TestNormalizeWithoutRosterKeepsNames(t *testing.T) {
	for _, r := range [][]content.Author{nil, {}} {
		got := Normalize("John Doe", nil, r)
		if len(got) != 1 || got[0].IsDetailed() || got[0].Name() != "John Doe" {
			t.Fatalf("Normalize = %#v", got)
		}
	}
}

func TestResolveFromRosterMatching(t *testing.T) {
	if ref := ResolveFromRoster("john doe", roster); !ref.IsDetailed() || ref.Name() != "John Doe" {
		t.Fatalf("case-insensitive match failed: %#v", ref)
	}
	if ref := ResolveFromRoster("John", roster); ref.IsDetailed() || ref.Name() != "John" {
		t.Fatalf("partial name must not match: %#v", ref)
	}
}

func TestNormalizeOrderAndDedup(t *testing.T) {
	authorsField := []any{"Ann", map[string]any{"name": " Bob ", "affiliation": "ACME"}, "Ann"}
	author := []any{"Cid", "Bob", 42, map[string]any{"title": "no name"}, ""}

	got := Names(Normalize(author, authorsField, nil))
	want := []string{"Ann", "Bob", "Cid"}
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
}

func TestNormalizeDedupIsLiteral(t *testing.T) {
	got := Names(Normalize("ann", []any{"Ann"}, nil))
	if len(got) != 2 {
		t.Fatalf("differently cased names are distinct before resolution: %v", got)
	}
}

func TestNormalizeInlineObjectIsEnrichedByRoster(t *testing.T) {
	author := map[string]any{"name": "jane roe", "url": "https://inline.example.com"}
	got := Normalize(author, nil, roster)
	a, ok := got[0].Detail()
	if !ok || a.URL != "https://jane.example.com" {
		t.Fatalf("roster should win over inline fields: %#v", got)
	}
}

func TestNormalizeIgnoresNonListPlural(t *testing.T) {
	if got := Normalize(nil, "Solo", nil); len(got) != 0 {
		t.Fatalf("Normalize = %v", got)
	}
	if got := Normalize(nil, nil, roster); len(got) != 0 {
		t.Fatalf("Normalize = %v", got)
	}
}

func TestResolveDefaultAndForPost(t *testing.T) {
	if _, ok := ResolveDefault("", roster); ok {
		t.Fatal("empty default must not resolve")
	}
	def, ok := ResolveDefault("JOHN DOE", roster)
	if !ok || !def.IsDetailed() {
		t.Fatalf("ResolveDefault = %#v, %v", def, ok)
	}

	got := ForPost(nil, "John Doe", roster)
	if len(got) != 1 || got[0].Name() != "John Doe" || !got[0].IsDetailed() {
		t.Fatalf("ForPost default = %#v", got)
	}
	if got := ForPost(nil, "", roster); len(got) != 0 {
		t.Fatalf("ForPost without default = %#v", got)
	}
	got = ForPost([]content.AuthorRef{content.NameRef("jane roe")}, "John Doe", roster)
	if len(got) != 1 || !got[0].IsDetailed() || got[0].Name() != "Jane Roe" {
		t.Fatalf("ForPost own authors = %#v", got)
	}
}

func TestTwitterCreator(t *testing.T) {
	john := content.DetailedRef(roster[0])
	jane := content.DetailedRef(roster[1])

	tests := []struct {
		name string
		refs []content.AuthorRef
		site string
		want string
	}{
		{"first author handle", []content.AuthorRef{john, jane}, "site", "@johnd"},
		{"only first author counts", []content.AuthorRef{jane, john}, "@site", "@site"},
		{"bare name falls back", []content.AuthorRef{content.NameRef("X")}, "site", "@site"},
		{"nothing", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TwitterCreator(tt.refs, tt.site); got != tt.want {
				t.Fatalf("TwitterCreator = %q, want %q", got, tt.want)
			}
		})
	}
}
