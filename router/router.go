// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package router implements the element-level entry point:
// Representation resolution, per-item processor dispatch via the
// process package, placement composition and normal transform.
package router

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/meshxform"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/process"
	"github.com/archex/ifcgeom/step"
)

// allowedRepresentationTypes is the set of RepresentationType values
// the router processes; axis-only, curve2d, footprint and similar
// non-solid representations are skipped.
var allowedRepresentationTypes = map[string]bool{
	"Body":                 true,
	"SweptSolid":           true,
	"Brep":                 true,
	"CSG":                  true,
	"Clipping":             true,
	"SurfaceModel":         true,
	"Tessellation":         true,
	"MappedRepresentation": true,
	"AdvancedSweptSolid":   true,
}

// ProcessElement implements process_element(element) -> Mesh: resolves
// Representation (attribute 6), walks its ShapeRepresentations and
// their Items, dispatches each item to process.Process and merges the
// results, then applies the composed ObjectPlacement (attribute 5).
// A failing item does not abort the element: it contributes nothing
// to the merge and its wrapped error is appended to the returned
// slice. The visited items' express ids are returned too, so
// callers can look up a style bound directly to one of them.
func ProcessElement(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, []uint32, []error) {
	m := &mesh.Mesh{}
	repRef := e.Attr(6)
	if repRef.IsNull() {
		return m, nil, nil
	}
	pds, err := dec.ResolveRef(repRef)
	if err != nil {
		return m, nil, []error{err}
	}
	if pds == nil {
		return m, nil, nil
	}

	reps, err := dec.ResolveRefList(pds.Attr(2))
	if err != nil {
		return m, nil, []error{err}
	}

	var errs []error
	var itemIDs []uint32
	for _, rep := range reps {
		if !allowedRepresentationTypes[rep.Attr(2).Str] {
			continue
		}
		itemRefs := rep.Attr(3)
		if itemRefs.Kind == step.TList {
			for _, r := range itemRefs.List {
				if r.IsRef() {
					itemIDs = append(itemIDs, r.Ref)
				}
			}
		}
		items, err := dec.ResolveRefList(itemRefs)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, item := range items {
			im, err := process.Process(item, dec, cfg)
			if err != nil {
				errs = append(errs, &ProcessError{ItemID: item.ID, TypeName: item.Type.String(), Err: err})
				continue
			}
			m.Merge(im)
		}
	}

	placement, err := resolveObjectPlacement(dec, e.Attr(5))
	if err != nil {
		errs = append(errs, err)
		return m, itemIDs, errs
	}
	meshxform.Apply(m, placement)
	return m, itemIDs, errs
}
