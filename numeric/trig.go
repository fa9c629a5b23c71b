package numeric

func normalizeDeg(deg int32) int32 {
	d := deg % 360
	if d < 0 {
		d += 360
	}
	return d
}

// CosDeg returns an exact result at the four cardinal angles and a
// fixed-point Taylor approximation (via radian conversion) otherwise. The
// cardinal short-circuits matter beyond tidiness: a 90-degree rotation must
// produce exactly zero components, which the collision tests rely on for
// tie-breaks.
func CosDeg(deg int32) Unit {
	switch normalizeDeg(deg) {
	case 0:
		return One
	case 90:
		return Zero
	case 180:
		return NegOne
	case 270:
		return Zero
	default:
		return cosRad(degToRad(deg))
	}
}

// SinDeg mirrors CosDeg.
func SinDeg(deg int32) Unit {
	switch normalizeDeg(deg) {
	case 0:
		return Zero
	case 90:
		return One
	case 180:
		return Zero
	case 270:
		return NegOne
	default:
		return sinRad(degToRad(deg))
	}
}

// degToRad converts to radians as pi*deg/180, after folding the angle into
// (-180, 180] for better convergence of the series below.
func degToRad(deg int32) Unit {
	d := normalizeDeg(deg)
	if d > 180 {
		d -= 360
	}
	return pi.Mul(FromInt(d)).Div(FromInt(180))
}

// sinRad is a 4-term Taylor series: x - x^3/6 + x^5/120 - x^7/5040.
func sinRad(x Unit) Unit {
	x2 := x.Mul(x)
	result := x
	term := x.Mul(x2).Div(FromInt(6))
	result = result.Sub(term)
	term = term.Mul(x2).Div(FromInt(20))
	result = result.Add(term)
	term = term.Mul(x2).Div(FromInt(42))
	result = result.Sub(term)
	return result
}

// cosRad is a 4-term Taylor series: 1 - x^2/2 + x^4/24 - x^6/720.
func cosRad(x Unit) Unit {
	x2 := x.Mul(x)
	result := One
	term := x2.Div(FromInt(2))
	result = result.Sub(term)
	term = term.Mul(x2).Div(FromInt(12))
	result = result.Add(term)
	term = term.Mul(x2).Div(FromInt(30))
	result = result.Sub(term)
	return result
}
