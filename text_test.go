package fishtts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		size     int
		expected []string
	}{
		{
			name:     "no chunking",
			text:     "Hello world",
			size:     0,
			expected: []string{"Hello world"},
		},
		{
			name:     "fits in one chunk",
			text:     "Hello",
			size:     10,
			expected: []string{"Hello"},
		},
		{
			name:     "cut after spaces",
			text:     "aaaa bbbb cccc",
			size:     5,
			expected: []string{"aaaa ", "bbbb ", "cccc"},
		},
		{
			name:     "hard cut on long words",
			text:     "abcdefghij",
			size:     4,
			expected: []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "multibyte runes",
			text:     "héllo wörld",
			size:     6,
			expected: []string{"héllo ", "wörld"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitText(tt.text, tt.size))
		})
	}
}

func TestSplitTextProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")
		size := rapid.IntRange(1, 50).Draw(rt, "size")

		chunks := splitText(text, size)

		if joined := strings.Join(chunks, ""); joined != text {
			rt.Fatalf("chunks %q do not rebuild %q", chunks, text)
		}
		for _, chunk := range chunks {
			if text != "" && chunk == "" {
				rt.Fatalf("empty chunk in %q", chunks)
			}
			if n := utf8.RuneCountInString(chunk); n > size {
				rt.Fatalf("chunk %q has %d runes, limit is %d", chunk, n, size)
			}
		}
	})
}
