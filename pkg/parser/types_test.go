package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "six fields with newline",
			raw:  "Latency a b c d 12.5\n",
			want: []string{"Latency", "a", "b", "c", "d", "12.5\n"},
		},
		{
			name: "no spaces",
			raw:  "Latency",
			want: []string{"Latency"},
		},
		{
			name: "empty line",
			raw:  "\n",
			want: []string{"\n"},
		},
		{
			name: "empty string",
			raw:  "",
			want: []string{""},
		},
		{
			name: "repeated spaces are not collapsed",
			raw:  "Latency  a",
			want: []string{"Latency", "", "a"},
		},
		{
			name: "leading space",
			raw:  " Latency a",
			want: []string{"", "Latency", "a"},
		},
		{
			name: "tabs do not split",
			raw:  "Latency\ta\tb\tc\td\t5",
			want: []string{"Latency\ta\tb\tc\td\t5"},
		},
		{
			name: "carriage return stays in token",
			raw:  "Latency a\r\n",
			want: []string{"Latency", "a\r\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.raw))
		})
	}
}

func TestLine_Tokens(t *testing.T) {
	line := &Line{Raw: "a b c"}
	assert.Equal(t, []string{"a", "b", "c"}, line.Tokens())
}
