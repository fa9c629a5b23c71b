package world

import (
	"collide3d/geometry"
	"collide3d/store"
)

// Update runs one tick: integrate, clear caches, build group AABBs, then
// broadphase-filter and narrowphase-dispatch every candidate group pair.
func (w *World) Update() {
	w.integrate()
	w.contacts = w.contacts[:0]
	w.buildGroupAABBs()

	n := len(w.groupAABBs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w.testGroupPair(w.groupAABBs[i], w.groupAABBs[j])
		}
	}
}

func (w *World) integrate() {
	active := w.bodies.Active()
	for i := range active {
		b := &active[i]
		if b.IsStatic {
			continue
		}
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(w.dt))
		b.Position = b.Position.Add(b.Velocity.Scale(w.dt))
	}
}

func (w *World) buildGroupAABBs() {
	w.groupAABBs = w.groupAABBs[:0]
	ids := w.shapeGroups.ActiveIDs()
	for _, gid := range ids {
		g, err := w.shapeGroups.Get(gid)
		if err != nil {
			continue
		}
		aabb, ok := w.groupWorldAABB(*g)
		if !ok {
			continue
		}
		w.groupAABBs = append(w.groupAABBs, groupAABB{group: gid, aabb: aabb})
	}
}

// groupWorldAABB unions the world-space AABBs of every live shape in the
// group. Reports false if the group has no shapes (or no link).
func (w *World) groupWorldAABB(g ShapeGroup) (geometry.AABB, bool) {
	if g.LinkShapes == store.InvalidID {
		return geometry.AABB{}, false
	}
	link, err := w.links.Get(g.LinkShapes)
	if err != nil {
		return geometry.AABB{}, false
	}
	body, err := w.bodies.Get(g.OwnerBody)
	if err != nil {
		return geometry.AABB{}, false
	}

	var result geometry.AABB
	found := false
	for _, sid := range link.Children {
		if sid == store.InvalidID {
			continue
		}
		shape, err := w.shapes.Get(sid)
		if err != nil {
			continue
		}
		prim, ok := w.worldPrimitive(*shape, *body)
		if !ok {
			continue
		}
		aabb := primitiveAABB(prim)
		if !found {
			result = aabb
			found = true
		} else {
			result = result.Union(aabb)
		}
	}
	return result, found
}

// testGroupPair applies the broadphase filter, then on success runs
// narrowphase over every shape-pair of the two groups.
func (w *World) testGroupPair(a, b groupAABB) {
	ga, err := w.shapeGroups.Get(a.group)
	if err != nil {
		return
	}
	gb, err := w.shapeGroups.Get(b.group)
	if err != nil {
		return
	}
	if ga.OwnerBody == gb.OwnerBody {
		return
	}
	if ga.Layer&gb.Mask == 0 || gb.Layer&ga.Mask == 0 {
		return
	}
	bodyA, err := w.bodies.Get(ga.OwnerBody)
	if err != nil {
		return
	}
	bodyB, err := w.bodies.Get(gb.OwnerBody)
	if err != nil {
		return
	}
	if bodyA.IsStatic && bodyB.IsStatic {
		return
	}
	if !a.aabb.Overlaps(b.aabb) {
		return
	}

	w.narrowphase(a.group, *ga, *bodyA, b.group, *gb, *bodyB)
}

func (w *World) narrowphase(groupA store.Identifier, ga ShapeGroup, bodyA Body, groupB store.Identifier, gb ShapeGroup, bodyB Body) {
	shapesA := w.linkChildren(ga.LinkShapes)
	shapesB := w.linkChildren(gb.LinkShapes)

	for _, sidA := range shapesA {
		shapeA, err := w.shapes.Get(sidA)
		if err != nil {
			continue
		}
		primA, ok := w.worldPrimitive(*shapeA, bodyA)
		if !ok {
			continue
		}
		for _, sidB := range shapesB {
			shapeB, err := w.shapes.Get(sidB)
			if err != nil {
				continue
			}
			primB, ok := w.worldPrimitive(*shapeB, bodyB)
			if !ok {
				continue
			}
			hit, ok := geometry.Collide(primA, primB)
			if !ok {
				continue
			}
			w.contacts = append(w.contacts, ContactPair{
				BodyA:  ga.OwnerBody,
				BodyB:  gb.OwnerBody,
				ShapeA: sidA,
				ShapeB: sidB,
				Normal: hit.Normal,
				Depth:  hit.Depth,
				Point:  hit.Point,
			})
		}
	}
}

// linkChildren returns the live, non-InvalidID children of a link in
// ascending slot order. A missing or InvalidID link yields nil.
func (w *World) linkChildren(linkID store.Identifier) []store.Identifier {
	if linkID == store.InvalidID {
		return nil
	}
	link, err := w.links.Get(linkID)
	if err != nil {
		return nil
	}
	out := make([]store.Identifier, 0, store.FanOut)
	for _, id := range link.Children {
		if id != store.InvalidID {
			out = append(out, id)
		}
	}
	return out
}
