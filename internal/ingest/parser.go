package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"mdblog/internal/domain/content"
)

// yamlFormat decodes "---" blocks with yaml.v3 so mappings come back as
// map[string]any and unquoted dates stay strings.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ParseFrontMatter splits raw into its metadata bag and trimmed body. A file
// without a metadata block yields an empty bag and the whole file as body.
func ParseFrontMatter(raw []byte) (content.Frontmatter, string, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	var data any
	body, err := frontmatter.Parse(bytes.NewReader(norm), &data, yamlFormat)
	if err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return content.ToFrontmatter(data), strings.TrimSpace(string(body)), nil
}
