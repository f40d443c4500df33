// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func TestV(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	var u V3
	if u.Add(&v, &w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u.Sub(&v, &w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u.Scale(-1, &v); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if u.Scale(2, &w); u != (V3{0, -2, 4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [0 -2 4]", u)
	}
	if d := v.Dot(&w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6\n", d)
	}
	if d := v.Dot(&v); d != 21 {
		t.Fatalf("V3.Dot\nhave %v\nwant 21\n", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v\n", l, math.Sqrt(21))
	}
	if l := w.Len(); l != float32(math.Sqrt(5)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v\n", l, math.Sqrt(5))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v.Norm(&v); v != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", v)
	}
	if w.Norm(&w); w != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 1 0]", w)
	}
	if u.Cross(&v, &w); u != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [1 0 0]", u)
	}
	if u.Cross(&w, &v); u != (V3{-1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [-1 0 0]", u)
	}
}

func TestV2(t *testing.T) {
	v := V2{3, 4}
	w := V2{-1, 2}

	var u V2
	if u.Add(&v, &w); u != (V2{2, 6}) {
		t.Fatalf("V2.Add\nhave %v\nwant [2 6]", u)
	}
	if u.Sub(&v, &w); u != (V2{4, 2}) {
		t.Fatalf("V2.Sub\nhave %v\nwant [4 2]", u)
	}
	if d := v.Dot(&w); d != 5 {
		t.Fatalf("V2.Dot\nhave %v\nwant 5\n", d)
	}
	if l := v.Len(); l != 5 {
		t.Fatalf("V2.Len\nhave %v\nwant 5\n", l)
	}
	if c := v.Cross(&w); c != 10 {
		t.Fatalf("V2.Cross\nhave %v\nwant 10\n", c)
	}

	u = V2{1, 0}
	u.Rotate(float32(math.Pi/2), &u)
	if math.Abs(float64(u[0])) > 1e-6 || math.Abs(float64(u[1])-1) > 1e-6 {
		t.Fatalf("V2.Rotate\nhave %v\nwant [0 1]", u)
	}
}

func TestM(t *testing.T) {
	var m M3
	m.I()
	if m != (M3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}) {
		t.Fatalf("M3.I\nhave %v\nwant identity", m)
	}

	l := M3{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 10},
	}
	var i, p M3
	i.Invert(&l)
	p.Mul(&l, &i)
	for c := range p {
		for r := range p[c] {
			want := float32(0)
			if c == r {
				want = 1
			}
			if math.Abs(float64(p[c][r]-want)) > 1e-5 {
				t.Fatalf("M3.Invert/Mul\nhave %v\nwant identity", p)
			}
		}
	}

	var tr M3
	tr.Transpose(&l)
	for c := range l {
		for r := range l[c] {
			if tr[r][c] != l[c][r] {
				t.Fatalf("M3.Transpose\nhave %v", tr)
			}
		}
	}

	var m4 M4
	m4.I()
	v := V4{2, -3, 5, 1}
	var u V4
	u.Mul(&m4, &v)
	if u != v {
		t.Fatalf("V4.Mul identity\nhave %v\nwant %v", u, v)
	}

	h := M4{
		{0, 1, 1, -3},
		{3, 0, -1, 0},
		{-1, 1, 0, 3},
		{1, 0, -3, 1},
	}
	var hi, hp M4
	hi.Invert(&h)
	hp.Mul(&h, &hi)
	for c := range hp {
		for r := range hp[c] {
			want := float32(0)
			if c == r {
				want = 1
			}
			if math.Abs(float64(hp[c][r]-want)) > 1e-4 {
				t.Fatalf("M4.Invert/Mul\nhave %v\nwant identity", hp)
			}
		}
	}
}
