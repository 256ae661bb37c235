package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Input(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := NewLine(strings.NewReader("  Report-1 \r\nsecond\n"), &out)

	got, err := l.Input("Enter the naming convention", "File-0-Content")
	require.NoError(t, err)
	assert.Equal(t, "  Report-1 ", got, "Input returns the raw line")
	assert.Contains(t, out.String(), "Enter the naming convention")
	assert.Contains(t, out.String(), "File-0-Content")

	got, err = l.Input("Next:", "")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestLine_InputAtEOF(t *testing.T) {
	t.Parallel()

	l := NewLine(strings.NewReader("last"), &bytes.Buffer{})

	got, err := l.Input("a", "")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	got, err = l.Input("b", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLine_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			got, err := NewLine(strings.NewReader(tt.input), &out).Confirm("Run again?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "(y/n)")
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLine_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("read failed")
	_, err := NewLine(failingReader{boom}, &bytes.Buffer{}).Input("a", "")
	assert.ErrorIs(t, err, boom)
}
