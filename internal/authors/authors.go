// Package authors turns the author fields of a post into a canonical list,
// promoting bare names to roster entries where the site configures them.
package authors

import (
	"strings"

	"mdblog/internal/domain/content"
)

// ResolveFromRoster returns the roster entry whose name equals name ignoring
// case. No roster or no match yields the bare name unchanged.
func ResolveFromRoster(name string, roster []content.Author) content.AuthorRef {
	for _, a := range roster {
		if strings.EqualFold(a.Name, name) {
			return content.DetailedRef(a)
		}
	}
	return content.NameRef(name)
}

// Normalize collects names from the plural authors field first and the
// singular author field second, drops duplicates keeping the first literal
// occurrence, then resolves each name against the roster.
func Normalize(author, authorsField any, roster []content.Author) []content.AuthorRef {
	var names []string
	if list, ok := asList(authorsField); ok {
		names = appendNames(names, list...)
	}
	if list, ok := asList(author); ok {
		names = appendNames(names, list...)
	} else if author != nil {
		names = appendNames(names, author)
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]content.AuthorRef, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, ResolveFromRoster(n, roster))
	}
	return out
}

// FromFrontmatter is Normalize over the author and authors keys of fm.
func FromFrontmatter(fm content.Frontmatter, roster []content.Author) []content.AuthorRef {
	return Normalize(fm["author"], fm["authors"], roster)
}

// ResolveDefault resolves the site default author. ok is false when name is empty.
func ResolveDefault(name string, roster []content.Author) (content.AuthorRef, bool) {
	if name == "" {
		return content.AuthorRef{}, false
	}
	return ResolveFromRoster(name, roster), true
}

// EnsureResolved promotes any remaining bare names through the roster.
// Detailed refs are kept as they are.
func EnsureResolved(refs []content.AuthorRef, roster []content.Author) []content.AuthorRef {
	if len(roster) == 0 {
		return refs
	}
	out := make([]content.AuthorRef, len(refs))
	for i, r := range refs {
		if r.IsDetailed() {
			out[i] = r
			continue
		}
		out[i] = ResolveFromRoster(r.Name(), roster)
	}
	return out
}

// ForPost returns the authors to attribute a post to: its own when it has
// any, else the resolved default author, else none.
func ForPost(refs []content.AuthorRef, defaultName string, roster []content.Author) []content.AuthorRef {
	if len(refs) == 0 {
		def, ok := ResolveDefault(defaultName, roster)
		if !ok {
			return nil
		}
		refs = []content.AuthorRef{def}
	}
	return EnsureResolved(refs, roster)
}

func Names(refs []content.AuthorRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name()
	}
	return out
}

// TwitterCreator picks the social card attribution. Only the first author's
// handle is considered; the site handle is the fallback.
func TwitterCreator(refs []content.AuthorRef, siteHandle string) string {
	if len(refs) > 0 {
		if a, ok := refs[0].Detail(); ok && a.Twitter != "" {
			return "@" + strings.TrimPrefix(a.Twitter, "@")
		}
	}
	if siteHandle == "" {
		return ""
	}
	return "@" + strings.TrimPrefix(siteHandle, "@")
}

func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case []content.AuthorRef:
		out := make([]any, len(x))
		for i, r := range x {
			out[i] = r.Name()
		}
		return out, true
	}
	return nil, false
}

func appendNames(dst []string, items ...any) []string {
	for _, item := range items {
		if name, ok := extractName(item); ok {
			dst = append(dst, name)
		}
	}
	return dst
}

// extractName accepts a string or a mapping with a string name. Extra keys
// on a mapping are ignored; the roster supplies details.
func extractName(v any) (string, bool) {
	var raw string
	switch x := v.(type) {
	case string:
		raw = x
	case content.Author:
		raw = x.Name
	default:
		obj, ok := content.AsObject(v)
		if !ok {
			return "", false
		}
		s, ok := obj["name"].(string)
		if !ok {
			return "", false
		}
		raw = s
	}
	name := strings.TrimSpace(raw)
	return name, name != ""
}
