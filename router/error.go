// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package router

import "fmt"

// ProcessError wraps a geometry-item processor failure with the
// item's express id and type name, the structured counterpart to the
// step package's Error. Unwrap exposes the
// underlying process.UnsupportedError/InvalidGeometryError (or
// step.Error from a failed dereference) for errors.As.
type ProcessError struct {
	ItemID   uint32
	TypeName string
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("router: processing #%d (%s): %v", e.ItemID, e.TypeName, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
