package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raphi011/docbatch/internal/storage"
)

// createMarkdown writes a level-one heading named after the file stem.
func createMarkdown(path string) error {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return storage.WriteFile(path, []byte(fmt.Sprintf("# %s\n\n", stem)))
}

// createCSV writes a CSV file with no rows.
func createCSV(path string) error {
	return storage.WriteWith(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		cw.Flush()
		return cw.Error()
	})
}

// createYAML writes an empty mapping.
func createYAML(path string) error {
	return storage.WriteWith(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(map[string]any{}); err != nil {
			return err
		}
		return enc.Close()
	})
}
