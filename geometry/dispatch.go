package geometry

// Kind tags a Primitive's payload and fixes the canonical ordering used by
// Collide: OBB < Sphere < Capsule, reducing the 3x3 type combinations to
// the six colliders implemented in collide.go.
type Kind uint8

const (
	KindOBB Kind = iota
	KindSphere
	KindCapsule
)

// Primitive is a discriminated union over the three shape payloads.
type Primitive struct {
	Kind    Kind
	OBB     OBB
	Sphere  Sphere
	Capsule Capsule
}

func FromOBB(b OBB) Primitive         { return Primitive{Kind: KindOBB, OBB: b} }
func FromSphere(s Sphere) Primitive   { return Primitive{Kind: KindSphere, Sphere: s} }
func FromCapsule(c Capsule) Primitive { return Primitive{Kind: KindCapsule, Capsule: c} }

// Collide dispatches a and b to the collider matching their kinds. If the
// caller's order does not already match the canonical Kind ordering, the
// pair is swapped for the call and the resulting normal is negated so it
// always points from the caller's a toward b.
func Collide(a, b Primitive) (Hit, bool) {
	if a.Kind > b.Kind {
		hit, ok := Collide(b, a)
		if !ok {
			return Hit{}, false
		}
		hit.Normal = hit.Normal.Neg()
		return hit, true
	}

	switch a.Kind {
	case KindOBB:
		switch b.Kind {
		case KindOBB:
			return OBBOBB(a.OBB, b.OBB)
		case KindSphere:
			return OBBSphere(a.OBB, b.Sphere)
		case KindCapsule:
			return OBBCapsule(a.OBB, b.Capsule)
		}
	case KindSphere:
		switch b.Kind {
		case KindSphere:
			return SphereSphere(a.Sphere, b.Sphere)
		case KindCapsule:
			return SphereCapsule(a.Sphere, b.Capsule)
		}
	case KindCapsule:
		return CapsuleCapsule(a.Capsule, b.Capsule)
	}
	return Hit{}, false
}
