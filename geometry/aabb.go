package geometry

import "collide3d/numeric"

func SphereAABB(s Sphere) AABB {
	r := numeric.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// OBBAABB derives the world-axis extent by summing, per axis, the absolute
// contribution of each rotation column scaled by its matching half-extent.
func OBBAABB(b OBB) AABB {
	half := [3]numeric.Unit{b.HalfExtents.X, b.HalfExtents.Y, b.HalfExtents.Z}
	extent := numeric.Vec3{}
	for i := 0; i < 3; i++ {
		col := b.Rotation.Col[i]
		extent.X = extent.X.Add(numeric.Abs(col.X).Mul(half[i]))
		extent.Y = extent.Y.Add(numeric.Abs(col.Y).Mul(half[i]))
		extent.Z = extent.Z.Add(numeric.Abs(col.Z).Mul(half[i]))
	}
	return AABB{Min: b.Center.Sub(extent), Max: b.Center.Add(extent)}
}

func CapsuleAABB(c Capsule) AABB {
	lo := numeric.Min(c.Start, c.End)
	hi := numeric.Max(c.Start, c.End)
	r := numeric.Vec3{X: c.Radius, Y: c.Radius, Z: c.Radius}
	return AABB{Min: lo.Sub(r), Max: hi.Add(r)}
}

// Overlaps is inclusive interval intersection on all three axes.
func (a AABB) Overlaps(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	if a.Max.Z < b.Min.Z || b.Max.Z < a.Min.Z {
		return false
	}
	return true
}

// Union returns the smallest AABB enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: numeric.Min(a.Min, b.Min), Max: numeric.Max(a.Max, b.Max)}
}
