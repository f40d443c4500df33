// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "math"

// V2 is a 2-component vector of float32.
type V2 [2]float32

// Add sets v to contain l + r.
func (v *V2) Add(l, r *V2) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V2) Sub(l, r *V2) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V2) Scale(s float32, w *V2) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V2) Dot(w *V2) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V2) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Norm sets v to contain w normalized.
func (v *V2) Norm(w *V2) { v.Scale(1/w.Len(), w) }

// Cross returns the z-component of l × r treated as 3D
// vectors with z=0 (the scalar "2D cross product").
func (l *V2) Cross(r *V2) float32 { return l[0]*r[1] - l[1]*r[0] }

// Rotate sets v to contain w rotated by angle radians
// counter-clockwise.
func (v *V2) Rotate(angle float32, w *V2) {
	s, c := math.Sincos(float64(angle))
	x := float32(c)*w[0] - float32(s)*w[1]
	y := float32(s)*w[0] + float32(c)*w[1]
	v[0], v[1] = x, y
}
