package numeric

// Mat3 stores three column vectors. The zero value is NOT the identity;
// use Identity().
type Mat3 struct {
	Col [3]Vec3
}

func Identity() Mat3 {
	return Mat3{Col: [3]Vec3{
		{X: One},
		{Y: One},
		{Z: One},
	}}
}

// MulVec3 is a column-linear combination.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m.Col[0].Scale(v.X).Add(m.Col[1].Scale(v.Y)).Add(m.Col[2].Scale(v.Z))
}

// MulMat3 transforms each of the right-hand columns.
func (m Mat3) MulMat3(o Mat3) Mat3 {
	return Mat3{Col: [3]Vec3{
		m.MulVec3(o.Col[0]),
		m.MulVec3(o.Col[1]),
		m.MulVec3(o.Col[2]),
	}}
}

// RotateX builds a rotation about the X axis by an integer number of
// degrees using the degree-exact trig helpers.
func RotateX(deg int32) Mat3 {
	c, s := CosDeg(deg), SinDeg(deg)
	return Mat3{Col: [3]Vec3{
		{X: One},
		{Y: c, Z: s},
		{Y: s.Neg(), Z: c},
	}}
}

func RotateY(deg int32) Mat3 {
	c, s := CosDeg(deg), SinDeg(deg)
	return Mat3{Col: [3]Vec3{
		{X: c, Z: s.Neg()},
		{Y: One},
		{X: s, Z: c},
	}}
}

func RotateZ(deg int32) Mat3 {
	c, s := CosDeg(deg), SinDeg(deg)
	return Mat3{Col: [3]Vec3{
		{X: c, Y: s},
		{X: s.Neg(), Y: c},
		{Z: One},
	}}
}
