package ingest

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the post file extensions in probing order.
var Extensions = []string{".md", ".mdx"}

type SourceFile struct {
	Path string
	Slug string
}

// DiscoverSource lists the post files directly under dir in directory order.
// Sub-directories (locale trees among them) are not descended into.
func DiscoverSource(dir string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		slug, ok := SlugFromFilename(e.Name())
		if !ok {
			continue
		}
		out = append(out, SourceFile{Path: filepath.Join(dir, e.Name()), Slug: slug})
	}
	return out, nil
}

// SlugFromFilename strips a known post extension. ok is false for any other file.
func SlugFromFilename(name string) (string, bool) {
	ext := filepath.Ext(name)
	for _, want := range Extensions {
		if ext == want {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}

// ResolveFile probes dir for slug with each extension in order. A path that
// exists but is not a regular file counts as missing.
func ResolveFile(dir, slug string) (string, bool, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, slug+ext)
		st, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return path, false, err
		}
		if !st.Mode().IsRegular() {
			continue
		}
		return path, true, nil
	}
	return "", false, nil
}
