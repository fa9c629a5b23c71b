package world

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"collide3d/geometry"
	"collide3d/numeric"
	"collide3d/store"
)

const contactArrowLength = 0.5

// DrawMask selects which replay categories DrawDebug visits.
type DrawMask uint8

const (
	DrawShapes DrawMask = 1 << iota
	DrawAABBs
	DrawContacts
	DrawBodyAxes
	DrawBodyOrigins
)

// DebugDraw is the visualization sink. Every position is a lossy float32
// view of the fixed-point state - never read back into the simulation.
type DebugDraw interface {
	DrawSphere(center rl.Vector3, radius float32)
	DrawBox(center, halfExtents rl.Vector3, rotation rl.Matrix)
	DrawCapsule(start, end rl.Vector3, radius float32)
	DrawAABB(min, max rl.Vector3)
	DrawLine(from, to rl.Vector3)
	DrawPoint(position rl.Vector3, size float32)
	DrawBodyOrigin(position rl.Vector3)
	DrawBodyAxes(position rl.Vector3, rotation rl.Matrix)
}

// SetDebugDraw installs the visualization sink and the categories it
// should replay.
func (w *World) SetDebugDraw(d DebugDraw, mask DrawMask) {
	w.draw = d
	w.drawMask = mask
}

func toRlVector3(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

// rotationMatrix is the only place a Mat3 crosses into float32: each
// column is converted independently and never written back.
func rotationMatrix(m numeric.Mat3) rl.Matrix {
	c0x, c0y, c0z := m.Col[0].Float32()
	c1x, c1y, c1z := m.Col[1].Float32()
	c2x, c2y, c2z := m.Col[2].Float32()
	return rl.Matrix{
		M0: c0x, M4: c1x, M8: c2x, M12: 0,
		M1: c0y, M5: c1y, M9: c2y, M13: 0,
		M2: c0z, M6: c1z, M10: c2z, M14: 0,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}
}

// DrawDebug replays the current tick's geometry through the installed
// sink, held by borrowed reference for the duration of this call only.
func (w *World) DrawDebug() {
	if w.draw == nil {
		return
	}

	if w.drawMask&DrawShapes != 0 || w.drawMask&DrawBodyOrigins != 0 || w.drawMask&DrawBodyAxes != 0 {
		w.drawBodies()
	}
	if w.drawMask&DrawAABBs != 0 {
		w.drawAABBs()
	}
	if w.drawMask&DrawContacts != 0 {
		w.drawContacts()
	}
}

func (w *World) drawBodies() {
	for _, bid := range w.bodies.ActiveIDs() {
		body, err := w.bodies.Get(bid)
		if err != nil {
			continue
		}
		px, py, pz := body.Position.Float32()

		if w.drawMask&DrawBodyOrigins != 0 {
			w.draw.DrawBodyOrigin(toRlVector3(px, py, pz))
		}
		if w.drawMask&DrawBodyAxes != 0 {
			w.draw.DrawBodyAxes(toRlVector3(px, py, pz), rotationMatrix(body.Rotation))
		}
		if w.drawMask&DrawShapes != 0 {
			w.drawBodyShapes(bid, *body)
		}
	}
}

func (w *World) drawBodyShapes(bodyID store.Identifier, body Body) {
	for _, gid := range w.linkChildren(body.LinkShapeGroups) {
		g, err := w.shapeGroups.Get(gid)
		if err != nil {
			continue
		}
		for _, sid := range w.linkChildren(g.LinkShapes) {
			shape, err := w.shapes.Get(sid)
			if err != nil {
				continue
			}
			prim, ok := w.worldPrimitive(*shape, body)
			if !ok {
				continue
			}
			w.drawPrimitive(prim)
		}
	}
}

func (w *World) drawPrimitive(p geometry.Primitive) {
	switch p.Kind {
	case geometry.KindSphere:
		x, y, z := p.Sphere.Center.Float32()
		w.draw.DrawSphere(toRlVector3(x, y, z), p.Sphere.Radius.Float32())
	case geometry.KindOBB:
		x, y, z := p.OBB.Center.Float32()
		hx, hy, hz := p.OBB.HalfExtents.Float32()
		w.draw.DrawBox(toRlVector3(x, y, z), toRlVector3(hx, hy, hz), rotationMatrix(p.OBB.Rotation))
	case geometry.KindCapsule:
		sx, sy, sz := p.Capsule.Start.Float32()
		ex, ey, ez := p.Capsule.End.Float32()
		w.draw.DrawCapsule(toRlVector3(sx, sy, sz), toRlVector3(ex, ey, ez), p.Capsule.Radius.Float32())
	}
}

func (w *World) drawAABBs() {
	for _, g := range w.groupAABBs {
		minX, minY, minZ := g.aabb.Min.Float32()
		maxX, maxY, maxZ := g.aabb.Max.Float32()
		w.draw.DrawAABB(toRlVector3(minX, minY, minZ), toRlVector3(maxX, maxY, maxZ))
	}
}

// drawContacts renormalizes each normal after the lossy Unit->float32
// conversion: fixed-point Normalize guarantees unit length in Q16.16, but
// that guarantee does not survive the float32 narrowing, and a visibly
// shrunk or stretched arrow is a worse debugging aid than a cheap refix.
func (w *World) drawContacts() {
	for _, c := range w.contacts {
		px, py, pz := c.Point.Float32()
		nx, ny, nz := c.Normal.Float32()
		if length := math32.Sqrt(nx*nx + ny*ny + nz*nz); length > 0 {
			nx, ny, nz = nx/length, ny/length, nz/length
		}
		point := toRlVector3(px, py, pz)
		w.draw.DrawPoint(point, 0.05)
		tip := toRlVector3(px+nx*contactArrowLength, py+ny*contactArrowLength, pz+nz*contactArrowLength)
		w.draw.DrawLine(point, tip)
	}
}
