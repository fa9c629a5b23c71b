// Package geometry implements the fixed-point collision primitives: closest
// point helpers, AABB derivation and predicates, and the six ordered-pair
// colliders over {Sphere, OBB, Capsule}.
package geometry

import "collide3d/numeric"

type Sphere struct {
	Center numeric.Vec3
	Radius numeric.Unit
}

type OBB struct {
	Center      numeric.Vec3
	HalfExtents numeric.Vec3
	Rotation    numeric.Mat3
}

type Capsule struct {
	Start  numeric.Vec3
	End    numeric.Vec3
	Radius numeric.Unit
}

type AABB struct {
	Min numeric.Vec3
	Max numeric.Vec3
}
