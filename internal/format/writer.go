package format

import (
	"github.com/raphi011/docbatch/internal/storage"
)

// DefaultSheetName is the name of the single sheet in generated workbooks.
const DefaultSheetName = "Sheet1"

// CreateFunc writes an empty document to path.
type CreateFunc func(path string) error

// Writer creates empty documents.
type Writer struct {
	SheetName string // spreadsheet sheet name; DefaultSheetName when empty
}

// Creator returns the creation function bound to kind. Kinds without a
// dedicated creator get storage.Touch.
func (w Writer) Creator(kind Kind) CreateFunc {
	switch kind {
	case Markup:
		return createMarkdown
	case Spreadsheet:
		sheet := w.SheetName
		if sheet == "" {
			sheet = DefaultSheetName
		}
		return func(path string) error { return createWorkbook(path, sheet) }
	case Tabular:
		return createCSV
	case WordDoc:
		return createDocument
	case SlideDeck:
		return createPresentation
	case StructuredConfig:
		return createYAML
	default:
		return storage.Touch
	}
}

// Create writes an empty document of the given kind to path.
func (w Writer) Create(kind Kind, path string) error {
	return w.Creator(kind)(path)
}
