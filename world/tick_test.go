package world

import (
	"testing"

	"collide3d/geometry"
	"collide3d/numeric"
	"collide3d/store"
)

func uu(i int32) numeric.Unit { return numeric.FromInt(i) }
func vv(x, y, z int32) numeric.Vec3 {
	return numeric.Vec3{X: uu(x), Y: uu(y), Z: uu(z)}
}

func newSphereBody(t *testing.T, w *World, pos numeric.Vec3, radius int32, layer, mask uint32) (body, group, shape store.Identifier) {
	t.Helper()
	b := w.CreateBody()
	bb, _ := w.GetBody(b)
	bb.Position = pos

	g := w.AddShapeGroup(b)
	gg, _ := w.GetShapeGroup(g)
	gg.Layer = layer
	gg.Mask = mask

	s := w.AddShape(g, ShapeSphere)
	setSphere(t, w, s, geometry.Sphere{Center: numeric.Vec3{}, Radius: uu(radius)})
	return b, g, s
}

func TestTwoSpheresCollide(t *testing.T) {
	w := NewWorld()
	newSphereBody(t, w, vv(0, 0, 0), 2, 1, 1)
	newSphereBody(t, w, vv(3, 0, 0), 2, 1, 1)

	w.Update()

	contacts := w.GetContacts()
	if len(contacts) != 1 {
		t.Fatalf("len(contacts) = %d, want 1", len(contacts))
	}
	if contacts[0].Depth != uu(1) {
		t.Fatalf("depth = %v, want 1", contacts[0].Depth)
	}
	if contacts[0].Normal != (numeric.Vec3{X: numeric.One}) {
		t.Fatalf("normal = %v, want +X", contacts[0].Normal)
	}
}

func TestTwoStaticSpheresNoContact(t *testing.T) {
	w := NewWorld()
	b1, _, _ := newSphereBody(t, w, vv(0, 0, 0), 2, 1, 1)
	b2, _, _ := newSphereBody(t, w, vv(3, 0, 0), 2, 1, 1)
	bb1, _ := w.GetBody(b1)
	bb1.IsStatic = true
	bb2, _ := w.GetBody(b2)
	bb2.IsStatic = true

	w.Update()
	if len(w.GetContacts()) != 0 {
		t.Fatalf("expected no contacts once statics are set, got %d", len(w.GetContacts()))
	}
}

func TestLayerMaskFiltersContact(t *testing.T) {
	w := NewWorld()
	newSphereBody(t, w, vv(0, 0, 0), 2, 1, 1)
	newSphereBody(t, w, vv(3, 0, 0), 2, 2, 2)

	w.Update()
	if len(w.GetContacts()) != 0 {
		t.Fatalf("mismatched layer/mask should suppress the contact, got %d", len(w.GetContacts()))
	}
}

func TestSphereVsOBBGrazing(t *testing.T) {
	w := NewWorld()

	boxBody := w.CreateBody()
	boxGroup := w.AddShapeGroup(boxBody)
	boxGG, _ := w.GetShapeGroup(boxGroup)
	boxGG.Layer, boxGG.Mask = 1, 1
	boxShape := w.AddShape(boxGroup, ShapeOBB)
	boxShapeRec, _ := w.GetShape(boxShape)
	box, _ := w.GetOBB(boxShapeRec.ShapeTypeID)
	box.HalfExtents = vv(2, 2, 2)
	box.Rotation = numeric.Identity()

	sphereBody := w.CreateBody()
	sb, _ := w.GetBody(sphereBody)
	sb.Position = vv(3, 0, 0)
	sphereGroup := w.AddShapeGroup(sphereBody)
	sphereGG, _ := w.GetShapeGroup(sphereGroup)
	sphereGG.Layer, sphereGG.Mask = 1, 1
	sphereShape := w.AddShape(sphereGroup, ShapeSphere)
	setSphere(t, w, sphereShape, geometry.Sphere{Radius: uu(1)})

	w.Update()

	contacts := w.GetContacts()
	if len(contacts) != 1 {
		t.Fatalf("len(contacts) = %d, want 1", len(contacts))
	}
	if contacts[0].Depth != numeric.Zero {
		t.Fatalf("depth = %v, want 0 (grazing)", contacts[0].Depth)
	}
}

func TestRotatedBodySphereCollision(t *testing.T) {
	w := NewWorld()

	bodyA := w.CreateBody()
	ba, _ := w.GetBody(bodyA)
	ba.Rotation = numeric.RotateZ(90)
	groupA := w.AddShapeGroup(bodyA)
	ga, _ := w.GetShapeGroup(groupA)
	ga.Layer, ga.Mask = 1, 1
	shapeA := w.AddShape(groupA, ShapeSphere)
	setSphere(t, w, shapeA, geometry.Sphere{Center: vv(2, 0, 0), Radius: uu(1)})

	bodyB := w.CreateBody()
	bb, _ := w.GetBody(bodyB)
	bb.Position = vv(0, 3, 0)
	groupB := w.AddShapeGroup(bodyB)
	gb, _ := w.GetShapeGroup(groupB)
	gb.Layer, gb.Mask = 1, 1
	shapeB := w.AddShape(groupB, ShapeSphere)
	setSphere(t, w, shapeB, geometry.Sphere{Radius: uu(1)})

	w.Update()

	contacts := w.GetContacts()
	if len(contacts) != 1 {
		t.Fatalf("len(contacts) = %d, want 1", len(contacts))
	}
	if contacts[0].Depth != uu(1) {
		t.Fatalf("depth = %v, want 1", contacts[0].Depth)
	}
}

func TestIntegrateSkipsStaticBodies(t *testing.T) {
	w := NewWorld()
	id := w.CreateBody()
	b, _ := w.GetBody(id)
	b.IsStatic = true
	b.Velocity = vv(5, 0, 0)

	w.Update()

	after, _ := w.GetBody(id)
	if after.Position != (numeric.Vec3{}) {
		t.Fatalf("static body should not move, got %v", after.Position)
	}
}

func TestIntegrateAppliesAccelerationAndVelocity(t *testing.T) {
	w := NewWorld()
	w.SetUpdateRate(1)
	id := w.CreateBody()
	b, _ := w.GetBody(id)
	b.Acceleration = vv(60, 0, 0)

	w.Update()

	after, _ := w.GetBody(id)
	if after.Velocity != vv(60, 0, 0) {
		t.Fatalf("velocity = %v, want (60,0,0)", after.Velocity)
	}
	if after.Position != vv(60, 0, 0) {
		t.Fatalf("position = %v, want (60,0,0)", after.Position)
	}
}
