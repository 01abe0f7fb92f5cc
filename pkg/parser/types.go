// Package parser provides log file reading and tokenizing functionality.
package parser

import "strings"

// Separator is the only byte that splits a line into tokens.
const Separator = " "

// Line represents a single line read from a log source.
type Line struct {
	// Raw is the line content including its trailing newline, if it had one.
	Raw string

	// Source is the name of the file or reader this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Tokens splits the line on the literal space character.
func (l *Line) Tokens() []string {
	return Tokenize(l.Raw)
}

// Tokenize splits raw on every single space. Repeated spaces produce empty
// tokens, and tabs, carriage returns and newlines stay inside the token they
// belong to. A line with no spaces yields one token.
func Tokenize(raw string) []string {
	return strings.Split(raw, Separator)
}
