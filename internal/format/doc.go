// Package format defines the document formats docbatch can generate and the
// creators that write a minimal, valid empty document of each format.
//
// # Formats
//
// [Formats] is the ordered menu shown to the user. Each entry binds an
// extension to a [Kind]:
//
//  1. md    Markdown: "# <stem>" heading followed by a blank line
//  2. xlsx  Excel Workbook: one default sheet, no data
//  3. csv   CSV File: no rows, no header
//  4. docx  Word Document: one empty paragraph
//  5. pptx  PowerPoint Presentation: no slides
//  6. yaml  YAML File: an empty mapping ("{}")
//
// # Creation
//
// [Writer.Create] dispatches on the kind. Kinds without a creator fall back
// to [storage.Touch], producing an empty file. All creators replace an
// existing file at the target path.
//
// # Lookup
//
// [ByNumber] resolves a 1-based menu choice. [Resolve] and [Search] match
// free-form queries against extensions and descriptions using fuzzy
// matching.
package format
