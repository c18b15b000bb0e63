// Package catalog holds the static, hand-authored message trees that back
// every page when no CMS or admin content is available. The catalog is the
// lowest-precedence content source and must stay complete on its own: a site
// with no CMS configured renders entirely from here.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/business-start/api/internal/domain"
)

//go:embed messages/he.json messages/en.json
var messageFS embed.FS

// Catalog exposes deep copies of the per-locale message trees.
type Catalog struct {
	trees map[domain.Locale]domain.Messages
}

// Load parses the embedded message files. It fails only on a build defect
// (malformed embedded JSON), so callers treat an error as fatal.
func Load() (*Catalog, error) {
	trees := make(map[domain.Locale]domain.Messages, len(domain.SupportedLocales))
	for _, locale := range domain.SupportedLocales {
		raw, err := messageFS.ReadFile(fmt.Sprintf("messages/%s.json", locale))
		if err != nil {
			return nil, fmt.Errorf("catalog: read messages for %s: %w", locale, err)
		}
		var tree domain.Messages
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("catalog: parse messages for %s: %w", locale, err)
		}
		trees[locale] = tree
	}
	return &Catalog{trees: trees}, nil
}

// Clone returns a deep copy of the message tree for the locale. Mutating the
// result never affects the catalog.
func (c *Catalog) Clone(locale domain.Locale) domain.Messages {
	tree, ok := c.trees[locale]
	if !ok {
		tree = c.trees[domain.DefaultLocale]
	}
	copied, _ := deepCopyValue(tree).(domain.Messages)
	if copied == nil {
		copied = domain.Messages{}
	}
	return copied
}

// Keys returns every dotted leaf key present in the locale's tree, used to
// verify locale parity.
func (c *Catalog) Keys(locale domain.Locale) []string {
	var keys []string
	collectKeys("", c.trees[locale], &keys)
	return keys
}

func collectKeys(prefix string, value any, out *[]string) {
	node, ok := value.(map[string]any)
	if !ok {
		*out = append(*out, prefix)
		return
	}
	for key, child := range node {
		childKey := key
		if prefix != "" {
			childKey = prefix + "." + key
		}
		collectKeys(childKey, child, out)
	}
}

// Get resolves a dotted key (e.g. "hero.title") against a message tree.
func Get(tree domain.Messages, key string) (any, bool) {
	var current any = tree
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set writes a value at a dotted key, creating intermediate objects as needed.
func Set(tree domain.Messages, key string, value any) {
	segments := strings.Split(key, ".")
	current := map[string]any(tree)
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// SetString writes value at key only when value is non-empty, preserving the
// existing default otherwise. This is the fill-if-present overlay rule.
func SetString(tree domain.Messages, key, value string) {
	if value == "" {
		return
	}
	Set(tree, key, value)
}

func deepCopyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, child := range typed {
			copied[key] = deepCopyValue(child)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, child := range typed {
			copied[i] = deepCopyValue(child)
		}
		return copied
	default:
		return typed
	}
}
