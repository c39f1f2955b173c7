package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes translation file content into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The extension may or may not include the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser matching the filename extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// languageMaps keeps the top-level entries that are maps and rejects the rest.
func languageMaps(data map[string]any) (map[string]map[string]any, bool) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		result[lang] = m
	}
	return result, true
}
