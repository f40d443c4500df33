// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import "bytes"

// Entity is the result of one Scanner.Next call: the identity and
// byte range of a candidate "#id=TYPE(...);" statement. Span covers
// "[start_of_#, after_;]" — it has not been argument-parsed.
type Entity struct {
	ID   uint32
	Type Range // raw byte range of the type name (upper-case ASCII)
	Span Range
}

// Scanner performs the linear, byte-oriented pass over a Buffer that
// discovers entity statements. It never parses arguments and does not
// care about nested parentheses, which is what keeps it O(N): it
// looks only for the next '#' and the next ';'.
type Scanner struct {
	buf []byte
	pos int
}

// NewScanner creates a Scanner over buf, starting at the beginning.
func NewScanner(buf []byte) *Scanner { return &Scanner{buf: buf} }

// Pos returns the scanner's current byte cursor.
func (s *Scanner) Pos() int { return s.pos }

// Next advances to the next entity statement and returns it. The
// second result is false once the buffer is exhausted. A malformed
// statement — missing '=' after the id, or missing the terminating
// ';' — terminates iteration gracefully: Next reports position, not
// error kind, by returning ok=false; the scanner never panics on
// truncated input.
func (s *Scanner) Next() (Entity, bool) {
	for {
		start := indexByte(s.buf, s.pos, '#')
		if start < 0 {
			s.pos = len(s.buf)
			return Entity{}, false
		}
		idStart := start + 1
		idEnd := idStart
		for idEnd < len(s.buf) && isDigit(s.buf[idEnd]) {
			idEnd++
		}
		if idEnd == idStart {
			// Stray '#' with no digits; keep scanning past it.
			s.pos = start + 1
			continue
		}
		p := idEnd
		p = skipBlank(s.buf, p)
		if p >= len(s.buf) || s.buf[p] != '=' {
			s.pos = len(s.buf)
			return Entity{}, false
		}
		p++
		p = skipBlank(s.buf, p)
		typeStart := p
		for p < len(s.buf) && isTypeByte(s.buf[p]) {
			p++
		}
		if p == typeStart {
			s.pos = len(s.buf)
			return Entity{}, false
		}
		typeEnd := p
		semi := indexByte(s.buf, p, ';')
		if semi < 0 {
			s.pos = len(s.buf)
			return Entity{}, false
		}
		s.pos = semi + 1
		return Entity{
			ID:   uint32(parseInt(s.buf[idStart:idEnd])),
			Type: Range{typeStart, typeEnd},
			Span: Range{start, semi + 1},
		}, true
	}
}

// CountByType scans the remainder of the buffer and returns a count
// of entities keyed by upper-case type name. It is a convenience used
// by callers that only need per-type statistics (e.g. diagnostics,
// CLI summaries) and does not decode arguments.
func (s *Scanner) CountByType() map[string]int {
	counts := make(map[string]int)
	for {
		e, ok := s.Next()
		if !ok {
			return counts
		}
		name := string(s.buf[e.Type.Start:e.Type.End])
		counts[name]++
	}
}

func isTypeByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func skipBlank(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

// indexByte returns the index of the first occurrence of c in b at
// or after start, or -1. bytes.IndexByte vectorizes the search, which
// is what keeps the scanner's '#'/';' hunt cheap on large files.
func indexByte(b []byte, start int, c byte) int {
	if start >= len(b) {
		return -1
	}
	i := bytes.IndexByte(b[start:], c)
	if i < 0 {
		return -1
	}
	return start + i
}

// EqualTypeName compares a raw type-name byte slice against name
// case-insensitively. The format guarantees upper case, but helpers
// should not assume malformed input matches that.
func EqualTypeName(raw []byte, name string) bool {
	if len(raw) != len(name) {
		return false
	}
	for i := range raw {
		a, b := raw[i], name[i]
		if a >= 'a' && a <= 'z' {
			a -= 'a' - 'A'
		}
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
