package numeric

// Vec3 is a triple of Unit components.
type Vec3 struct {
	X, Y, Z Unit
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z)} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X.Div(o.X), v.Y.Div(o.Y), v.Z.Div(o.Z)} }

func (v Vec3) AddS(s Unit) Vec3 { return Vec3{v.X.Add(s), v.Y.Add(s), v.Z.Add(s)} }
func (v Vec3) SubS(s Unit) Vec3 { return Vec3{v.X.Sub(s), v.Y.Sub(s), v.Z.Sub(s)} }
func (v Vec3) Scale(s Unit) Vec3 { return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)} }
func (v Vec3) DivS(s Unit) Vec3  { return Vec3{v.X.Div(s), v.Y.Div(s), v.Z.Div(s)} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) Unit {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vec3) Equals(o Vec3) bool { return v == o }

func (v Vec3) Length() Unit { return v.Dot(v).Sqrt() }

// Normalize returns the zero vector when length is zero rather than
// signaling failure, short-circuiting before a division by zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.DivS(l)
}

// Min and Max are componentwise, used to derive AABBs.
func Min(a, b Vec3) Vec3 {
	return Vec3{minUnit(a.X, b.X), minUnit(a.Y, b.Y), minUnit(a.Z, b.Z)}
}

func Max(a, b Vec3) Vec3 {
	return Vec3{maxUnit(a.X, b.X), maxUnit(a.Y, b.Y), maxUnit(a.Z, b.Z)}
}

func minUnit(a, b Unit) Unit {
	if a < b {
		return a
	}
	return b
}

func maxUnit(a, b Unit) Unit {
	if a > b {
		return a
	}
	return b
}

// Float32 is a lossy conversion used only at the debug-draw boundary.
func (v Vec3) Float32() (x, y, z float32) {
	return v.X.Float32(), v.Y.Float32(), v.Z.Float32()
}
