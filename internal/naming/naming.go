package naming

import (
	"errors"
	"math/big"
	"strings"
)

// ErrInvalidCount is returned by Plan when count is below one.
var ErrInvalidCount = errors.New("count must be a positive integer")

// illegalChars replaces characters that are not allowed in file names on
// common filesystems.
var illegalChars = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// Sanitize replaces illegal filename characters with underscores and trims
// surrounding whitespace. Sanitize is idempotent.
func Sanitize(raw string) string {
	return strings.TrimSpace(illegalChars.Replace(raw))
}

// Span is a half-open byte range [Start, End) within a template.
type Span struct {
	Start int
	End   int
}

// FindCounter returns the span of the rightmost maximal run of ASCII digits
// in base that is not immediately preceded by '_'. The boolean is false when
// base has no such run.
func FindCounter(base string) (Span, bool) {
	var (
		found Span
		ok    bool
	)
	for i := 0; i < len(base); {
		if !isDigit(base[i]) {
			i++
			continue
		}
		start := i
		for i < len(base) && isDigit(base[i]) {
			i++
		}
		if start > 0 && base[start-1] == '_' {
			continue
		}
		found, ok = Span{Start: start, End: i}, true
	}
	return found, ok
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Sequence describes how the names of one batch are derived from a template.
type Sequence struct {
	Base    string   // sanitized template
	Counter Span     // counter position, valid only if HasSpan
	HasSpan bool     // false means the value is appended to Base
	Start   *big.Int // value of the counter digits, zero without a counter
	Count   int      // number of names in the batch
	Width   int      // digits in Start+Count; all values are padded to this
}

// Plan derives the Sequence for count copies of base. It only fails when
// count is below one.
func Plan(base string, count int) (Sequence, error) {
	if count < 1 {
		return Sequence{}, ErrInvalidCount
	}

	seq := Sequence{
		Base:  base,
		Start: new(big.Int),
		Count: count,
	}
	if span, ok := FindCounter(base); ok {
		seq.Counter = span
		seq.HasSpan = true
		// The span only covers ASCII digits, so SetString cannot fail.
		seq.Start.SetString(base[span.Start:span.End], 10)
	}

	last := new(big.Int).Add(seq.Start, big.NewInt(int64(count)))
	seq.Width = len(last.String())

	return seq, nil
}

// Value returns the counter value rendered for the i-th name (1-based),
// zero-padded to the sequence width.
func (s Sequence) Value(i int) string {
	v := new(big.Int).Add(s.Start, big.NewInt(int64(i))).String()
	if pad := s.Width - len(v); pad > 0 {
		v = strings.Repeat("0", pad) + v
	}
	return v
}

// Name returns the i-th name body (1-based) without extension.
func (s Sequence) Name(i int) string {
	v := s.Value(i)
	if !s.HasSpan {
		return s.Base + v
	}
	return s.Base[:s.Counter.Start] + v + s.Base[s.Counter.End:]
}

// Names returns all name bodies of the batch in order.
func (s Sequence) Names() []string {
	names := make([]string, 0, s.Count)
	for i := 1; i <= s.Count; i++ {
		names = append(names, s.Name(i))
	}
	return names
}

// Generate returns count file names for base, each ending in ext. ext
// includes its leading dot (".md"); an empty ext yields bare name bodies.
func Generate(base string, count int, ext string) ([]string, error) {
	seq, err := Plan(base, count)
	if err != nil {
		return nil, err
	}
	names := seq.Names()
	for i := range names {
		names[i] += ext
	}
	return names, nil
}
