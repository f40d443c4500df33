// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package router

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

// StyleIndex maps a styled geometric item's express id to its
// resolved color, built by walking every IfcStyledItem in a
// file. It is intentionally shallow: only the
// first IfcColourRgb reachable through a surface-style chain is kept
// per item.
type StyleIndex struct {
	colors map[uint32][4]float32
}

// BuildStyleIndex walks styledItems (every decoded IfcStyledItem in a
// file) and resolves IfcStyledItem -> IfcPresentationStyleAssignment/
// IfcSurfaceStyle -> IfcSurfaceStyleRendering/IfcSurfaceStyleShading ->
// IfcColourRgb, recording a color per styled item's express id.
func BuildStyleIndex(styledItems []step.DecodedEntity, dec *step.Decoder) (*StyleIndex, error) {
	idx := &StyleIndex{colors: make(map[uint32][4]float32)}
	for _, si := range styledItems {
		itemRef := si.Attr(0)
		if !itemRef.IsRef() {
			continue
		}
		styles, err := dec.ResolveRefList(si.Attr(1))
		if err != nil {
			return nil, err
		}
		for _, style := range styles {
			rgba, ok, err := resolveStyle(style, dec)
			if err != nil {
				return nil, err
			}
			if ok {
				idx.colors[itemRef.Ref] = rgba
				break
			}
		}
	}
	return idx, nil
}

func resolveStyle(style step.DecodedEntity, dec *step.Decoder) ([4]float32, bool, error) {
	switch style.Type.Code {
	case schema.IfcPresentationStyleAssignment:
		inner, err := dec.ResolveRefList(style.Attr(0))
		if err != nil {
			return [4]float32{}, false, err
		}
		for _, s := range inner {
			if rgba, ok, err := resolveStyle(s, dec); ok || err != nil {
				return rgba, ok, err
			}
		}
	case schema.IfcSurfaceStyle:
		inner, err := dec.ResolveRefList(style.Attr(2))
		if err != nil {
			return [4]float32{}, false, err
		}
		for _, s := range inner {
			if rgba, ok, err := resolveStyle(s, dec); ok || err != nil {
				return rgba, ok, err
			}
		}
	case schema.IfcSurfaceStyleRendering, schema.IfcSurfaceStyleShading:
		colourEnt, err := dec.ResolveRef(style.Attr(0))
		if err != nil {
			return [4]float32{}, false, err
		}
		if colourEnt == nil || colourEnt.Type.Code != schema.IfcColourRgb {
			return [4]float32{}, false, nil
		}
		red, _ := geomattr.Float(colourEnt.Attr(1))
		green, _ := geomattr.Float(colourEnt.Attr(2))
		blue, _ := geomattr.Float(colourEnt.Attr(3))
		return [4]float32{float32(red), float32(green), float32(blue), 1}, true, nil
	}
	return [4]float32{}, false, nil
}

// ColorForItem returns the color bound to itemID by the style walk,
// falling back to cfg's default color table keyed by typeName.
func (idx *StyleIndex) ColorForItem(itemID uint32, typeName string, cfg config.Config) [4]float32 {
	if idx != nil {
		if rgba, ok := idx.colors[itemID]; ok {
			return rgba
		}
	}
	return cfg.ColorFor(typeName)
}

// ColorForElement returns the first color bound to any of itemIDs by
// the style walk, falling back to cfg's default color table keyed by
// typeName when none of the element's items carry a style.
func (idx *StyleIndex) ColorForElement(itemIDs []uint32, typeName string, cfg config.Config) [4]float32 {
	if idx != nil {
		for _, id := range itemIDs {
			if rgba, ok := idx.colors[id]; ok {
				return rgba
			}
		}
	}
	return cfg.ColorFor(typeName)
}
