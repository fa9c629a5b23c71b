package world

import (
	"collide3d/numeric"
	"collide3d/store"
)

// ShapeType tags a Shape's payload. None marks a Shape record with no
// primitive allocated yet; add_shape never installs this tag itself, but
// it is the zero value.
type ShapeType uint8

const (
	ShapeNone ShapeType = iota
	ShapeOBB
	ShapeSphere
	ShapeCapsule
)

// Body carries pose and kinematic state. Rotation is never integrated -
// there is no angular velocity in this engine.
type Body struct {
	Position     numeric.Vec3
	Rotation     numeric.Mat3
	Velocity     numeric.Vec3
	Acceleration numeric.Vec3
	IsStatic     bool

	LinkShapeGroups store.Identifier
}

// ShapeGroup owns a set of shapes under one body and carries the
// (layer, mask) pair consulted by the broadphase filter. OwnerBody is a
// back-reference for lookup and filtering only - never walked as an
// ownership edge during removal.
type ShapeGroup struct {
	OwnerBody  store.Identifier
	LinkShapes store.Identifier
	Layer      uint32
	Mask       uint32
}

// Shape is a discriminated reference into the matching primitive store.
type Shape struct {
	Type        ShapeType
	ShapeTypeID store.Identifier
}

// ContactPair is one entry of the per-tick contact list.
type ContactPair struct {
	BodyA  store.Identifier
	BodyB  store.Identifier
	ShapeA store.Identifier
	ShapeB store.Identifier
	Normal numeric.Vec3
	Depth  numeric.Unit
	Point  numeric.Vec3
}
