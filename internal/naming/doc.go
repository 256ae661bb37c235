// Package naming computes the file names for a batch from a naming template.
//
// A template such as "Report-7-Draft" carries a counter: the rightmost run of
// ASCII digits that is not immediately preceded by an underscore. Each
// generated name replaces that run with the next value, zero-padded so every
// name in the batch has the same width:
//
//	Report-7-Draft x 3  -> Report-08-Draft, Report-09-Draft, Report-10-Draft
//
// Width is the number of digits in the largest value (start + count), so an
// embedded number widens the padding on its own.
//
// Digits directly after an underscore are opaque tokens ("v_2024") and are
// never incremented. When a template has no counter, the value is appended:
//
//	File x 3 -> File1, File2, File3
//
// Everything in this package is pure: no I/O and no global state.
package naming
