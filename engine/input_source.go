package engine

import "unicode"

// InputSource yields the keys a session is driven by
type InputSource interface {
	GetNextKey() rune
	PossibleNextInput() bool
}

// StringInputSource replays keys from a string, upper-cased
type StringInputSource struct {
	input []rune
	index int
}

// NewStringInputSource creates a source reading input from the start
func NewStringInputSource(input string) *StringInputSource {
	return &StringInputSource{input: []rune(input)}
}

// GetNextKey returns the next key, or 0 once the input is exhausted
func (s *StringInputSource) GetNextKey() rune {
	if !s.PossibleNextInput() {
		return 0
	}
	key := unicode.ToUpper(s.input[s.index])
	s.index++
	return key
}

// PossibleNextInput reports whether keys remain
func (s *StringInputSource) PossibleNextInput() bool {
	return s.index < len(s.input)
}
