package format

import "strings"

// Kind identifies a document format family.
type Kind int

const (
	Unknown Kind = iota
	Markup
	Spreadsheet
	Tabular
	WordDoc
	SlideDeck
	StructuredConfig
)

func (k Kind) String() string {
	switch k {
	case Markup:
		return "markup"
	case Spreadsheet:
		return "spreadsheet"
	case Tabular:
		return "tabular"
	case WordDoc:
		return "word-doc"
	case SlideDeck:
		return "slide-deck"
	case StructuredConfig:
		return "structured-config"
	default:
		return "unknown"
	}
}

// Format is one entry of the format menu.
type Format struct {
	Kind        Kind
	Ext         string // extension including the leading dot
	Description string
}

// Dir returns the output subdirectory name for the format: the extension
// without its dot.
func (f Format) Dir() string {
	return strings.TrimPrefix(f.Ext, ".")
}

// Label returns the menu label, e.g. "Markdown (md)".
func (f Format) Label() string {
	return f.Description + " (" + f.Dir() + ")"
}

// Formats lists the supported formats in menu order.
var Formats = []Format{
	{Kind: Markup, Ext: ".md", Description: "Markdown"},
	{Kind: Spreadsheet, Ext: ".xlsx", Description: "Excel Workbook"},
	{Kind: Tabular, Ext: ".csv", Description: "CSV File"},
	{Kind: WordDoc, Ext: ".docx", Description: "Word Document"},
	{Kind: SlideDeck, Ext: ".pptx", Description: "PowerPoint Presentation"},
	{Kind: StructuredConfig, Ext: ".yaml", Description: "YAML File"},
}

// ByNumber returns the format for a 1-based menu number.
func ByNumber(n int) (Format, bool) {
	if n < 1 || n > len(Formats) {
		return Format{}, false
	}
	return Formats[n-1], true
}

// ByExtension returns the format registered for ext. The leading dot and
// letter case are ignored. Unregistered extensions yield a Format of kind
// Unknown carrying the normalized extension.
func ByExtension(ext string) (Format, bool) {
	norm := "." + strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, f := range Formats {
		if f.Ext == norm {
			return f, true
		}
	}
	return Format{Kind: Unknown, Ext: norm, Description: "Empty file"}, false
}
