// Package world implements the scene lifecycle, integrator, broadphase and
// narrowphase dispatch, and contact emission that make up the engine's top
// layer.
package world

import (
	"log"

	"collide3d/geometry"
	"collide3d/numeric"
	"collide3d/store"
)

// World owns every store exclusively. Accessor references returned to the
// caller remain valid until the next mutating operation on the
// corresponding store.
type World struct {
	bodies      *store.Store[Body]
	shapeGroups *store.Store[ShapeGroup]
	shapes      *store.Store[Shape]
	links       *store.Store[store.Link]
	obbs        *store.Store[geometry.OBB]
	spheres     *store.Store[geometry.Sphere]
	capsules    *store.Store[geometry.Capsule]

	contacts []ContactPair

	groupAABBs []groupAABB

	updateRate numeric.Unit
	dt         numeric.Unit
	origin     numeric.Vec3
	up         numeric.Vec3

	draw     DebugDraw
	drawMask DrawMask

	idExhaustionLogged bool
	linkFullLogged     map[store.Identifier]bool
}

type groupAABB struct {
	group store.Identifier
	aabb  geometry.AABB
}

const defaultUpdateRate = 60

func NewWorld() *World {
	w := &World{
		bodies:         store.NewStore[Body](),
		shapeGroups:    store.NewStore[ShapeGroup](),
		shapes:         store.NewStore[Shape](),
		links:          store.NewStore[store.Link](),
		obbs:           store.NewStore[geometry.OBB](),
		spheres:        store.NewStore[geometry.Sphere](),
		capsules:       store.NewStore[geometry.Capsule](),
		up:             numeric.Vec3{Y: numeric.One},
		linkFullLogged: make(map[store.Identifier]bool),
	}
	w.SetUpdateRate(defaultUpdateRate)
	return w
}

// SetUpdateRate sets the implicit timestep dt = 1/rate.
func (w *World) SetUpdateRate(rate int32) {
	w.updateRate = numeric.FromInt(rate)
	w.dt = numeric.One.Div(w.updateRate)
}

// SetOrigin and SetOrientation store scene metadata. Neither is consumed
// by the current tick pipeline; they are reserved for future gravity-frame
// use and are snapshotted as-is.
func (w *World) SetOrigin(v numeric.Vec3)       { w.origin = v }
func (w *World) SetOrientation(up numeric.Vec3) { w.up = up }
func (w *World) Origin() numeric.Vec3           { return w.origin }
func (w *World) Orientation() numeric.Vec3      { return w.up }

// CreateBody returns the id of a zeroed body: identity rotation, zero
// vectors, non-static, no shape groups.
func (w *World) CreateBody() store.Identifier {
	id := w.bodies.Insert(Body{
		Rotation:        numeric.Identity(),
		LinkShapeGroups: store.InvalidID,
	})
	if id == store.InvalidID && !w.idExhaustionLogged {
		w.idExhaustionLogged = true
		log.Printf("world: body identifier space exhausted")
	}
	return id
}

// AddShapeGroup returns InvalidID if body is unknown or its link is full.
// The body's link is created lazily on first call.
func (w *World) AddShapeGroup(body store.Identifier) store.Identifier {
	b, err := w.bodies.Get(body)
	if err != nil {
		return store.InvalidID
	}
	if b.LinkShapeGroups == store.InvalidID {
		b.LinkShapeGroups = w.links.Insert(store.NewLink())
	}
	link, err := w.links.Get(b.LinkShapeGroups)
	if err != nil {
		return store.InvalidID
	}
	if link.FirstFree() < 0 {
		w.logLinkFull(b.LinkShapeGroups)
		return store.InvalidID
	}

	group := w.shapeGroups.Insert(ShapeGroup{
		OwnerBody:  body,
		LinkShapes: store.InvalidID,
	})
	link.Attach(group)
	return group
}

// AddShape returns InvalidID if typ is ShapeNone, the group is unknown, or
// the group's link is full. A fresh primitive is allocated in the matching
// store.
func (w *World) AddShape(group store.Identifier, typ ShapeType) store.Identifier {
	if typ == ShapeNone {
		return store.InvalidID
	}
	g, err := w.shapeGroups.Get(group)
	if err != nil {
		return store.InvalidID
	}
	if g.LinkShapes == store.InvalidID {
		g.LinkShapes = w.links.Insert(store.NewLink())
	}
	link, err := w.links.Get(g.LinkShapes)
	if err != nil {
		return store.InvalidID
	}
	if link.FirstFree() < 0 {
		w.logLinkFull(g.LinkShapes)
		return store.InvalidID
	}

	var typeID store.Identifier
	switch typ {
	case ShapeOBB:
		typeID = w.obbs.Insert(geometry.OBB{Rotation: numeric.Identity()})
	case ShapeSphere:
		typeID = w.spheres.Insert(geometry.Sphere{})
	case ShapeCapsule:
		typeID = w.capsules.Insert(geometry.Capsule{})
	default:
		return store.InvalidID
	}

	shape := w.shapes.Insert(Shape{Type: typ, ShapeTypeID: typeID})
	link.Attach(shape)
	return shape
}

// RemoveBody releases, in one operation, the body's link, every shape
// group it owns, those groups' links, every shape in those groups, and
// every primitive those shapes reference.
func (w *World) RemoveBody(id store.Identifier) {
	b, err := w.bodies.Get(id)
	if err != nil {
		return
	}
	linkID := b.LinkShapeGroups
	if linkID == store.InvalidID {
		w.bodies.Remove(id)
		return
	}
	link, err := w.links.Get(linkID)
	if err != nil {
		w.bodies.Remove(id)
		return
	}
	// Snapshot children by value: link points into a store slice that the
	// recursive removals below will mutate (and potentially relocate).
	children := link.Children

	for _, group := range children {
		if group != store.InvalidID {
			w.removeShapeGroupCascade(group)
		}
	}
	w.links.Remove(linkID)
	w.bodies.Remove(id)
}

// RemoveShapeGroup is tolerant of invalid ids and rejects a group that
// does not belong to body rather than silently repairing.
func (w *World) RemoveShapeGroup(body, group store.Identifier) {
	b, err := w.bodies.Get(body)
	if err != nil {
		return
	}
	if b.LinkShapeGroups == store.InvalidID {
		return
	}
	link, err := w.links.Get(b.LinkShapeGroups)
	if err != nil {
		return
	}
	if !link.Contains(group) {
		return
	}
	link.Detach(group)
	w.removeShapeGroupCascade(group)
}

// removeShapeGroupCascade releases a shape group's link, every shape it
// owns, and every primitive those shapes reference, without touching the
// parent body's link (the caller has already detached it, or is removing
// the whole body).
func (w *World) removeShapeGroupCascade(group store.Identifier) {
	g, err := w.shapeGroups.Get(group)
	if err != nil {
		return
	}
	linkID := g.LinkShapes
	if linkID == store.InvalidID {
		w.shapeGroups.Remove(group)
		return
	}
	link, err := w.links.Get(linkID)
	if err != nil {
		w.shapeGroups.Remove(group)
		return
	}
	children := link.Children

	for _, shape := range children {
		if shape != store.InvalidID {
			w.removeShapeCascade(shape)
		}
	}
	w.links.Remove(linkID)
	w.shapeGroups.Remove(group)
}

// RemoveShape is tolerant of invalid ids and rejects a shape that does not
// belong to group.
func (w *World) RemoveShape(group, shape store.Identifier) {
	g, err := w.shapeGroups.Get(group)
	if err != nil {
		return
	}
	if g.LinkShapes == store.InvalidID {
		return
	}
	link, err := w.links.Get(g.LinkShapes)
	if err != nil {
		return
	}
	if !link.Contains(shape) {
		return
	}
	link.Detach(shape)
	w.removeShapeCascade(shape)
}

func (w *World) removeShapeCascade(shape store.Identifier) {
	s, err := w.shapes.Get(shape)
	if err != nil {
		return
	}
	switch s.Type {
	case ShapeOBB:
		w.obbs.Remove(s.ShapeTypeID)
	case ShapeSphere:
		w.spheres.Remove(s.ShapeTypeID)
	case ShapeCapsule:
		w.capsules.Remove(s.ShapeTypeID)
	}
	w.shapes.Remove(shape)
}

func (w *World) GetBody(id store.Identifier) (*Body, error) { return w.bodies.Get(id) }
func (w *World) GetShapeGroup(id store.Identifier) (*ShapeGroup, error) {
	return w.shapeGroups.Get(id)
}
func (w *World) GetShape(id store.Identifier) (*Shape, error)      { return w.shapes.Get(id) }
func (w *World) GetOBB(id store.Identifier) (*geometry.OBB, error) { return w.obbs.Get(id) }
func (w *World) GetSphere(id store.Identifier) (*geometry.Sphere, error) {
	return w.spheres.Get(id)
}
func (w *World) GetCapsule(id store.Identifier) (*geometry.Capsule, error) {
	return w.capsules.Get(id)
}
func (w *World) GetContacts() []ContactPair { return w.contacts }

// logLinkFull logs a link's first exhaustion and stays silent on repeats,
// the same once-per-condition shape as the teacher's lastLoggedCount gate.
func (w *World) logLinkFull(link store.Identifier) {
	if w.linkFullLogged[link] {
		return
	}
	w.linkFullLogged[link] = true
	log.Printf("world: link %d is full (max %d children)", link, store.FanOut)
}
