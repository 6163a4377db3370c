// Package textscan provides a position-tracked cursor for hand-written
// command grammars.
//
// Every scan operation either consumes input and reports true, or leaves the
// cursor untouched and reports false. Patterns are anchored at the cursor.
package textscan

import (
	"regexp"
	"strings"
)

// Scanner is a cursor over src.
type Scanner struct {
	src string
	pos int
}

// New returns a scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string {
	return s.src[s.pos:]
}

// EOS reports whether all input has been consumed.
func (s *Scanner) EOS() bool {
	return s.pos >= len(s.src)
}

// Scan consumes and returns a match of re starting exactly at the cursor.
func (s *Scanner) Scan(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(s.Rest())
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	matched := s.src[s.pos : s.pos+loc[1]]
	s.pos += loc[1]
	return matched, true
}

// Skip consumes a match of re at the cursor and reports whether it did.
func (s *Scanner) Skip(re *regexp.Regexp) bool {
	_, ok := s.Scan(re)
	return ok
}

// ScanUntil consumes input up to and including the next match of re and
// returns everything consumed.
func (s *Scanner) ScanUntil(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(s.Rest())
	if loc == nil {
		return "", false
	}
	consumed := s.src[s.pos : s.pos+loc[1]]
	s.pos += loc[1]
	return consumed, true
}

// ScanLiteral consumes prefix at the cursor, ignoring ASCII case.
func (s *Scanner) ScanLiteral(prefix string) bool {
	rest := s.Rest()
	if len(rest) < len(prefix) || !strings.EqualFold(rest[:len(prefix)], prefix) {
		return false
	}
	s.pos += len(prefix)
	return true
}
