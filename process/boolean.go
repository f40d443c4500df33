// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/step"
)

// processBooleanClippingResult implements BooleanClippingResult:
// attributes (Operator, FirstOperand, SecondOperand). Real CSG is
// future work; this returns the first operand's mesh only,
// dispatching recursively so nested boolean results resolve too.
// Unsupported first-operand types yield an empty mesh.
func processBooleanClippingResult(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, error) {
	first, err := dec.ResolveRef(e.Attr(1))
	if err != nil {
		return nil, err
	}
	if first == nil {
		return &mesh.Mesh{}, nil
	}
	m, err := Process(*first, dec, cfg)
	if err != nil {
		if isUnsupported(err) {
			return &mesh.Mesh{}, nil
		}
		return nil, err
	}
	return m, nil
}
