// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import (
	"log/slog"

	"github.com/archex/ifcgeom/schema"
)

// DecodedEntity is the result of decoding one entity statement:
// positional attributes whose meaning is assigned by the IFC schema
// for ifc_type.
type DecodedEntity struct {
	ID         uint32
	Type       schema.IfcType
	Attributes []AttributeValue
}

// Attr returns the attribute at index i, or the zero AttributeValue
// (Kind TNull) if the entity has fewer attributes than the schema for
// its type expects. Processors must not peek past an attribute count
// the schema assigns for the type, but a short attribute list is
// common in practice (trailing optional attributes are often simply
// absent rather than encoded as "$").
func (e DecodedEntity) Attr(i int) AttributeValue {
	if i < 0 || i >= len(e.Attributes) {
		return AttributeValue{Kind: TNull}
	}
	return e.Attributes[i]
}

// Decoder performs on-demand parsing of entity byte ranges into
// DecodedEntity values, memoizing each decode under its parsed
// id. A Decoder is not safe for concurrent use: its cache is a
// plain map mutated through an exclusive handle, matching the
// single-threaded-per-session model of a parsing run. Callers that want to
// parallelize element processing should construct one Decoder per
// goroutine over the same shared, read-only Index.
type Decoder struct {
	buf     *Buffer
	index   *Index
	catalog *schema.Catalog
	cache   map[uint32]DecodedEntity
	logger  *slog.Logger
	hits    uint64
	misses  uint64
}

// NewDecoder creates a Decoder over buf, using index for by-id
// dereference and catalog to classify type names. If logger is nil,
// slog.Default() is used.
func NewDecoder(buf *Buffer, index *Index, catalog *schema.Catalog, logger *slog.Logger) *Decoder {
	if catalog == nil {
		catalog = schema.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		buf:     buf,
		index:   index,
		catalog: catalog,
		cache:   make(map[uint32]DecodedEntity),
		logger:  logger,
	}
}

// DecodeAt parses exactly one entity from the slice spanned by span
// and populates the memo cache under the parsed id.
func (d *Decoder) DecodeAt(span Range) (DecodedEntity, error) {
	data := d.buf.Bytes(span)
	lex := NewLexer(data, 0)

	idTok, err := lex.readEntityRef()
	if err != nil {
		return DecodedEntity{}, err
	}
	lex.skipSpace()
	if lex.pos >= len(lex.buf) || lex.buf[lex.pos] != '=' {
		return DecodedEntity{}, newParseErr(data, lex.pos, "expected '=' after entity id")
	}
	lex.pos++
	lex.skipSpace()
	if lex.pos >= len(lex.buf) || !isTypeStart(lex.buf[lex.pos]) {
		return DecodedEntity{}, newParseErr(data, lex.pos, "expected type name")
	}
	typeRange := lex.readTypeName()
	lex.skipSpace()
	if lex.pos >= len(lex.buf) || lex.buf[lex.pos] != '(' {
		return DecodedEntity{}, newParseErr(data, lex.pos, "expected argument list")
	}
	args, err := lex.readArgList()
	if err != nil {
		return DecodedEntity{}, err
	}

	attrs := make([]AttributeValue, len(args))
	for i, a := range args {
		attrs[i] = tokenToAttribute(a, data)
	}
	ent := DecodedEntity{
		ID:         idTok.Ref,
		Type:       d.catalog.Lookup(data[typeRange.Start:typeRange.End]),
		Attributes: attrs,
	}
	d.cache[ent.ID] = ent
	return ent, nil
}

// DecodeByID ensures the index has an entry for id, then decodes the
// range (returning the cached copy if this id was decoded before).
func (d *Decoder) DecodeByID(id uint32) (DecodedEntity, error) {
	if e, ok := d.cache[id]; ok {
		d.hits++
		return e, nil
	}
	d.misses++
	span, ok := d.index.Lookup(id)
	if !ok {
		d.logger.Debug("entity id not found", slog.Uint64("id", uint64(id)))
		return DecodedEntity{}, ErrNotFound
	}
	return d.DecodeAt(span)
}

// CacheStats returns the cumulative cache hit and miss counts of
// DecodeByID calls. Clear does not reset them.
func (d *Decoder) CacheStats() (hits, misses uint64) { return d.hits, d.misses }

// CacheLen returns the number of entities currently memoized.
func (d *Decoder) CacheLen() int { return len(d.cache) }

// ResolveRef resolves attr as an entity reference: null/derived
// yields (nil, nil); anything else that is not a reference is a type
// error.
func (d *Decoder) ResolveRef(attr AttributeValue) (*DecodedEntity, error) {
	switch attr.Kind {
	case TEntityRef:
		e, err := d.DecodeByID(attr.Ref)
		if err != nil {
			return nil, err
		}
		return &e, nil
	case TNull, TDerived:
		return nil, nil
	default:
		return nil, &Error{Kind: KindUnexpectedType, Reason: "attribute is not an entity reference"}
	}
}

// ResolveRefList requires attr to be a list; it collects each
// entity-ref child in order, skipping non-refs (the format mixes null
// placeholders in reference lists in practice, so these are ignored
// rather than treated as errors).
func (d *Decoder) ResolveRefList(attr AttributeValue) ([]DecodedEntity, error) {
	if attr.Kind != TList {
		return nil, &Error{Kind: KindUnexpectedType, Reason: "attribute is not a list"}
	}
	out := make([]DecodedEntity, 0, len(attr.List))
	for _, child := range attr.List {
		if child.Kind != TEntityRef {
			continue
		}
		e, err := d.DecodeByID(child.Ref)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Clear empties the decode cache. Callers processing very large files
// should call this periodically unless re-dereferencing the same ids
// is expected; the cache is otherwise unbounded.
func (d *Decoder) Clear() {
	d.logger.Debug("clearing decode cache", slog.Int("entries", len(d.cache)))
	d.cache = make(map[uint32]DecodedEntity)
}

// Index returns the Decoder's entity index, so callers can build
// additional Decoders sharing it across goroutines.
func (d *Decoder) Index() *Index { return d.index }

// Buffer returns the Decoder's text buffer.
func (d *Decoder) Buffer() *Buffer { return d.buf }

// Catalog returns the Decoder's schema catalog.
func (d *Decoder) Catalog() *schema.Catalog { return d.catalog }
