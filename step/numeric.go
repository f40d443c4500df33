// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

// parseInt parses an optionally-signed run of decimal digits without
// allocating. Overflow is handled leniently (it wraps) because IFC
// integer attributes are always small in practice.
func parseInt(b []byte) int64 {
	i := 0
	neg := false
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	var v int64
	for ; i < len(b); i++ {
		v = v*10 + int64(b[i]-'0')
	}
	if neg {
		v = -v
	}
	return v
}

// parseFloat parses a float literal of the grammar
//
//	float = '-'? digits '.' digits? exponent?
//	exponent = [eE] [+-]? digits
//
// without allocating an intermediate string. It accumulates the
// mantissa as a float64 digit by digit and applies the exponent with
// a single power-of-ten multiply, which is accurate enough for the
// float32 values the pipeline ultimately stores.
func parseFloat(b []byte) float64 {
	i := 0
	neg := false
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	var mantissa float64
	for i < len(b) && isDigit(b[i]) {
		mantissa = mantissa*10 + float64(b[i]-'0')
		i++
	}
	if i < len(b) && b[i] == '.' {
		i++
		frac := 0.0
		scale := 1.0
		for i < len(b) && isDigit(b[i]) {
			frac = frac*10 + float64(b[i]-'0')
			scale *= 10
			i++
		}
		mantissa += frac / scale
	}
	exp := 0
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		expNeg := false
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			expNeg = b[i] == '-'
			i++
		}
		for i < len(b) && isDigit(b[i]) {
			exp = exp*10 + int(b[i]-'0')
			i++
		}
		if expNeg {
			exp = -exp
		}
	}
	if exp != 0 {
		mantissa *= pow10(exp)
	}
	if neg {
		mantissa = -mantissa
	}
	return mantissa
}

func pow10(exp int) float64 {
	neg := exp < 0
	if neg {
		exp = -exp
	}
	r := 1.0
	base := 10.0
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	if neg {
		return 1 / r
	}
	return r
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// looksLikeFloat reports whether the numeric literal starting at b
// (which begins with an optional '-' followed by at least one digit)
// must be tokenized as a float rather than an integer: it contains a
// '.' or an exponent marker before the literal ends. The tokenizer
// calls this before committing to Integer, so that "0." is
// recognized as a float per the grammar.
func looksLikeFloat(b []byte) bool {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	return i < len(b) && (b[i] == '.' || b[i] == 'e' || b[i] == 'E')
}
