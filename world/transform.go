package world

import (
	"collide3d/geometry"
)

func transformSphere(local geometry.Sphere, body Body) geometry.Sphere {
	return geometry.Sphere{
		Center: body.Position.Add(body.Rotation.MulVec3(local.Center)),
		Radius: local.Radius,
	}
}

func transformOBB(local geometry.OBB, body Body) geometry.OBB {
	return geometry.OBB{
		Center:      body.Position.Add(body.Rotation.MulVec3(local.Center)),
		HalfExtents: local.HalfExtents,
		Rotation:    body.Rotation.MulMat3(local.Rotation),
	}
}

func transformCapsule(local geometry.Capsule, body Body) geometry.Capsule {
	return geometry.Capsule{
		Start:  body.Position.Add(body.Rotation.MulVec3(local.Start)),
		End:    body.Position.Add(body.Rotation.MulVec3(local.End)),
		Radius: local.Radius,
	}
}

// worldPrimitive materializes shape (owned, transitively, by body) in
// world space as a geometry.Primitive ready for Collide.
func (w *World) worldPrimitive(shape Shape, body Body) (geometry.Primitive, bool) {
	switch shape.Type {
	case ShapeSphere:
		s, err := w.spheres.Get(shape.ShapeTypeID)
		if err != nil {
			return geometry.Primitive{}, false
		}
		return geometry.FromSphere(transformSphere(*s, body)), true
	case ShapeOBB:
		b, err := w.obbs.Get(shape.ShapeTypeID)
		if err != nil {
			return geometry.Primitive{}, false
		}
		return geometry.FromOBB(transformOBB(*b, body)), true
	case ShapeCapsule:
		c, err := w.capsules.Get(shape.ShapeTypeID)
		if err != nil {
			return geometry.Primitive{}, false
		}
		return geometry.FromCapsule(transformCapsule(*c, body)), true
	}
	return geometry.Primitive{}, false
}

// primitiveAABB derives the world-space AABB of a materialized primitive.
func primitiveAABB(p geometry.Primitive) geometry.AABB {
	switch p.Kind {
	case geometry.KindSphere:
		return geometry.SphereAABB(p.Sphere)
	case geometry.KindOBB:
		return geometry.OBBAABB(p.OBB)
	case geometry.KindCapsule:
		return geometry.CapsuleAABB(p.Capsule)
	}
	return geometry.AABB{}
}
