package world

import (
	"bytes"
	"encoding/binary"
	"io"

	"collide3d/numeric"
)

// Save writes every store in the order bodies, shape_groups, shapes,
// links, obbs, spheres, capsules, followed by origin, up, and
// update_rate. Each store is a chunk in the format documented by
// store.Store.Save; the three scalars trail as a fixed-size footer.
func (w *World) Save(wr io.Writer) error {
	stores := []interface{ Save(io.Writer) error }{
		w.bodies, w.shapeGroups, w.shapes, w.links, w.obbs, w.spheres, w.capsules,
	}
	for _, s := range stores {
		if err := s.Save(wr); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, w.origin); err != nil {
		return err
	}
	if err := binary.Write(&buf, binary.LittleEndian, w.up); err != nil {
		return err
	}
	if err := binary.Write(&buf, binary.LittleEndian, w.updateRate); err != nil {
		return err
	}
	_, err := wr.Write(buf.Bytes())
	return err
}

// Load restores a world from a stream produced by Save, replacing the
// receiver's contents entirely.
func (w *World) Load(r io.Reader) error {
	stores := []interface{ Load(io.Reader) error }{
		w.bodies, w.shapeGroups, w.shapes, w.links, w.obbs, w.spheres, w.capsules,
	}
	for _, s := range stores {
		if err := s.Load(r); err != nil {
			return err
		}
	}

	if err := binary.Read(r, binary.LittleEndian, &w.origin); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &w.up); err != nil {
		return err
	}
	var rate numeric.Unit
	if err := binary.Read(r, binary.LittleEndian, &rate); err != nil {
		return err
	}
	w.updateRate = rate
	w.dt = numeric.One.Div(w.updateRate)
	return nil
}
