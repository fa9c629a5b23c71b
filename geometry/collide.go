package geometry

import "collide3d/numeric"

// fallbackNormal is used when the direction between two shapes is otherwise
// indeterminate (concentric centers, exact grazing).
var fallbackNormal = numeric.Vec3{Y: numeric.One}

// Hit is the result of a successful narrowphase test: a single normal,
// penetration depth, and contact point. Manifolds are out of scope; every
// pair produces at most one Hit.
type Hit struct {
	Normal numeric.Vec3
	Depth  numeric.Unit
	Point  numeric.Vec3
}

// SphereSphere implements the canonical Sphere-Sphere test. normal points
// from a toward b.
func SphereSphere(a, b Sphere) (Hit, bool) {
	diff := b.Center.Sub(a.Center)
	dist := diff.Length()
	depth := a.Radius.Add(b.Radius).Sub(dist)
	if depth < numeric.Zero {
		return Hit{}, false
	}
	var normal numeric.Vec3
	if dist == numeric.Zero {
		normal = fallbackNormal
	} else {
		normal = diff.DivS(dist)
	}
	point := a.Center.Add(normal.Scale(a.Radius))
	return Hit{Normal: normal, Depth: depth, Point: point}, true
}

// SphereCapsule reduces to Sphere-Sphere against a sphere seated at the
// closest point on the capsule's segment.
func SphereCapsule(s Sphere, c Capsule) (Hit, bool) {
	closest := ClosestPointOnSegment(s.Center, c.Start, c.End)
	return SphereSphere(s, Sphere{Center: closest, Radius: c.Radius})
}

// CapsuleCapsule reduces to Sphere-Sphere between the closest points of the
// two axis segments.
func CapsuleCapsule(a, b Capsule) (Hit, bool) {
	c1, c2 := ClosestPointsOnSegments(a.Start, a.End, b.Start, b.End)
	return SphereSphere(Sphere{Center: c1, Radius: a.Radius}, Sphere{Center: c2, Radius: b.Radius})
}

// OBBSphere is the canonical OBB-Sphere test. normal points from the box
// toward the sphere.
func OBBSphere(box OBB, s Sphere) (Hit, bool) {
	half := [3]numeric.Unit{box.HalfExtents.X, box.HalfExtents.Y, box.HalfExtents.Z}
	local := LocalCoords(s.Center, box)
	localArr := [3]numeric.Unit{local.X, local.Y, local.Z}

	inside := true
	for i := 0; i < 3; i++ {
		if numeric.Abs(localArr[i]) > half[i] {
			inside = false
			break
		}
	}

	if inside {
		minIdx := 0
		minPen := half[0].Sub(numeric.Abs(localArr[0]))
		for i := 1; i < 3; i++ {
			pen := half[i].Sub(numeric.Abs(localArr[i]))
			if pen < minPen {
				minPen = pen
				minIdx = i
			}
		}
		sign := numeric.One
		if localArr[minIdx] < numeric.Zero {
			sign = numeric.NegOne
		}
		axis := box.Rotation.Col[minIdx]
		normal := axis.Scale(sign)
		depth := minPen.Add(s.Radius)

		surfaceLocal := localArr
		surfaceLocal[minIdx] = sign.Mul(half[minIdx])
		point := box.Center
		for i := 0; i < 3; i++ {
			point = point.Add(box.Rotation.Col[i].Scale(surfaceLocal[i]))
		}
		return Hit{Normal: normal, Depth: depth, Point: point}, true
	}

	closest := ClosestPointOnOBB(s.Center, box)
	diff := s.Center.Sub(closest)
	dist := diff.Length()
	depth := s.Radius.Sub(dist)
	if depth < numeric.Zero {
		return Hit{}, false
	}
	var normal numeric.Vec3
	if dist == numeric.Zero {
		normal = fallbackNormal
	} else {
		normal = diff.DivS(dist)
	}
	return Hit{Normal: normal, Depth: depth, Point: closest}, true
}

// OBBCapsule seeds the segment parameter with the box center, refines once
// against the box, then reduces to OBB-Sphere.
func OBBCapsule(box OBB, c Capsule) (Hit, bool) {
	seed := ClosestPointOnSegment(box.Center, c.Start, c.End)
	onBox := ClosestPointOnOBB(seed, box)
	onSegment := ClosestPointOnSegment(onBox, c.Start, c.End)
	return OBBSphere(box, Sphere{Center: onSegment, Radius: c.Radius})
}

// OBBOBB runs the 15-axis separating axis test: 3 face normals of a, 3 of
// b, and their 9 pairwise cross products. normal points from a toward b.
func OBBOBB(a, b OBB) (Hit, bool) {
	centerOffset := b.Center.Sub(a.Center)
	colsA := a.Rotation.Col
	colsB := b.Rotation.Col
	halfA := [3]numeric.Unit{a.HalfExtents.X, a.HalfExtents.Y, a.HalfExtents.Z}
	halfB := [3]numeric.Unit{b.HalfExtents.X, b.HalfExtents.Y, b.HalfExtents.Z}

	var axes [15]numeric.Vec3
	axes[0], axes[1], axes[2] = colsA[0], colsA[1], colsA[2]
	axes[3], axes[4], axes[5] = colsB[0], colsB[1], colsB[2]
	idx := 6
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axes[idx] = colsA[i].Cross(colsB[j])
			idx++
		}
	}

	minOverlap := numeric.FromInt(32000)
	var minAxis numeric.Vec3
	found := false

	for _, axis := range axes {
		length := axis.Length()
		if length < numeric.Epsilon {
			continue
		}
		n := axis.DivS(length)

		var projA, projB numeric.Unit
		for i := 0; i < 3; i++ {
			projA = projA.Add(numeric.Abs(colsA[i].Dot(n).Mul(halfA[i])))
			projB = projB.Add(numeric.Abs(colsB[i].Dot(n).Mul(halfB[i])))
		}
		dist := numeric.Abs(centerOffset.Dot(n))
		overlap := projA.Add(projB).Sub(dist)
		if overlap < numeric.Zero {
			return Hit{}, false
		}
		if overlap < minOverlap {
			minOverlap = overlap
			minAxis = n
			found = true
		}
	}
	if !found {
		return Hit{}, false
	}
	if centerOffset.Dot(minAxis) < numeric.Zero {
		minAxis = minAxis.Neg()
	}
	point := a.Center.Add(b.Center).Scale(numeric.Half)
	return Hit{Normal: minAxis, Depth: minOverlap, Point: point}, true
}
