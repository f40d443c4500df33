// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package step implements a zero-copy tokenizer, a linear entity
// scanner and a lazy, reference-resolving entity decoder for the
// STEP/IFC text exchange format.
package step

// Range is a borrowed byte range into a Buffer. It never copies the
// underlying bytes; callers that need an owned value must convert it
// explicitly (see Buffer.String).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether r spans zero bytes.
func (r Range) Empty() bool { return r.Start >= r.End }

// Buffer is the immutable text of a STEP/IFC file. Every Range and
// every Token produced by this package is only meaningful relative to
// the Buffer it was produced from.
type Buffer struct {
	data []byte
}

// NewBuffer wraps b as a Buffer. The caller must not mutate b for as
// long as the Buffer (or anything derived from it) is in use.
func NewBuffer(b []byte) *Buffer { return &Buffer{data: b} }

// Bytes returns the raw bytes spanned by r. The returned slice aliases
// the Buffer's storage.
func (b *Buffer) Bytes(r Range) []byte {
	if r.Empty() {
		return nil
	}
	return b.data[r.Start:r.End]
}

// String returns an owned copy of the bytes spanned by r. Use this
// when a value must outlive the Buffer or must not alias its storage.
func (b *Buffer) String(r Range) string { return string(b.Bytes(r)) }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// At returns the byte at position i.
func (b *Buffer) At(i int) byte { return b.data[i] }
