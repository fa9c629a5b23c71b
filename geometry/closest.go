package geometry

import "collide3d/numeric"

// ClosestPointOnSegment projects p onto the segment ab, clamping the
// parameter to [0, 1], and returns the resulting point.
func ClosestPointOnSegment(p, a, b numeric.Vec3) numeric.Vec3 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == numeric.Zero {
		return a
	}
	t := p.Sub(a).Dot(ab).Div(denom)
	t = numeric.Clamp(t, numeric.Zero, numeric.One)
	return a.Add(ab.Scale(t))
}

// ClosestPointsOnSegments is Ericson's clamped-parameter closest-pair
// algorithm for two segments (Real-Time Collision Detection, 5.1.9). It
// returns the closest point on each segment.
func ClosestPointsOnSegments(p1, q1, p2, q2 numeric.Vec3) (c1, c2 numeric.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t numeric.Unit

	if a <= numeric.Epsilon && e <= numeric.Epsilon {
		return p1, p2
	}
	if a <= numeric.Epsilon {
		s = numeric.Zero
		t = numeric.Clamp(f.Div(e), numeric.Zero, numeric.One)
	} else {
		c := d1.Dot(r)
		if e <= numeric.Epsilon {
			t = numeric.Zero
			s = numeric.Clamp(c.Neg().Div(a), numeric.Zero, numeric.One)
		} else {
			b := d1.Dot(d2)
			denom := a.Mul(e).Sub(b.Mul(b))
			if denom != numeric.Zero {
				s = numeric.Clamp(b.Mul(f).Sub(c.Mul(e)).Div(denom), numeric.Zero, numeric.One)
			} else {
				s = numeric.Zero
			}
			t = b.Mul(s).Add(f).Div(e)

			if t < numeric.Zero {
				t = numeric.Zero
				s = numeric.Clamp(c.Neg().Div(a), numeric.Zero, numeric.One)
			} else if t > numeric.One {
				t = numeric.One
				s = numeric.Clamp(b.Sub(c).Div(a), numeric.Zero, numeric.One)
			}
		}
	}

	c1 = p1.Add(d1.Scale(s))
	c2 = p2.Add(d2.Scale(t))
	return c1, c2
}

// ClosestPointOnOBB returns the point on or inside box that is nearest p, by
// clamping p's local-frame coordinates to the box's half-extents.
func ClosestPointOnOBB(p numeric.Vec3, box OBB) numeric.Vec3 {
	d := p.Sub(box.Center)
	result := box.Center
	axes := [3]numeric.Vec3{box.Rotation.Col[0], box.Rotation.Col[1], box.Rotation.Col[2]}
	half := [3]numeric.Unit{box.HalfExtents.X, box.HalfExtents.Y, box.HalfExtents.Z}
	for i := 0; i < 3; i++ {
		dist := d.Dot(axes[i])
		dist = numeric.Clamp(dist, half[i].Neg(), half[i])
		result = result.Add(axes[i].Scale(dist))
	}
	return result
}

// LocalCoords returns p expressed in box's local frame (unclamped), used by
// the inside/outside test in Sphere-OBB.
func LocalCoords(p numeric.Vec3, box OBB) numeric.Vec3 {
	d := p.Sub(box.Center)
	return numeric.Vec3{
		X: d.Dot(box.Rotation.Col[0]),
		Y: d.Dot(box.Rotation.Col[1]),
		Z: d.Dot(box.Rotation.Col[2]),
	}
}
