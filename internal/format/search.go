package format

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// formatSource implements fuzzy.Source over the menu, matching on
// "<ext> <description>".
type formatSource []Format

func (s formatSource) String(i int) string { return s[i].Dir() + " " + s[i].Description }
func (s formatSource) Len() int            { return len(s) }

// Search returns the formats matching query, best match first. An empty
// query returns every format in menu order.
func Search(query string) []Format {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]Format(nil), Formats...)
	}

	matches := fuzzy.FindFrom(query, formatSource(Formats))
	result := make([]Format, 0, len(matches))
	for _, m := range matches {
		result = append(result, Formats[m.Index])
	}
	return result
}

// Resolve picks a single format for query. An exact extension ("yaml",
// ".XLSX") wins; otherwise the best fuzzy match is used.
func Resolve(query string) (Format, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Format{}, false
	}
	if f, ok := ByExtension(query); ok {
		return f, true
	}
	if found := Search(query); len(found) > 0 {
		return found[0], true
	}
	return Format{}, false
}
