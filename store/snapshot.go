package store

import (
	"bytes"
	"encoding/binary"
	"io"
)

// writeChunk writes a little-endian u32 length prefix followed by data.
func writeChunk(w io.Writer, data []byte) error {
	var sz [4]byte
	binary.LittleEndian.PutUint32(sz[:], uint32(len(data)))
	if _, err := w.Write(sz[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// readChunk reads back what writeChunk wrote.
func readChunk(r io.Reader) ([]byte, error) {
	var sz [4]byte
	if _, err := io.ReadFull(r, sz[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(sz[:])
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

// writeVec encodes a vec as {u32 element_count}{capacity*sizeof(T) bytes of
// storage}, each itself a length-prefixed chunk so the reader never has to
// know capacity in advance. The storage chunk covers cap(s), not len(s): it
// is zero-padded past the live elements, matching what Go's own slice
// growth already leaves sitting in the backing array beyond len.
func writeVec[T any](buf *bytes.Buffer, s []T) error {
	var countBytes [4]byte
	binary.LittleEndian.PutUint32(countBytes[:], uint32(len(s)))
	if err := writeChunk(buf, countBytes[:]); err != nil {
		return err
	}

	padded := make([]T, cap(s))
	copy(padded, s)
	var storage bytes.Buffer
	if len(padded) > 0 {
		if err := binary.Write(&storage, binary.LittleEndian, padded); err != nil {
			return err
		}
	}
	return writeChunk(buf, storage.Bytes())
}

func readVec[T any](r *bytes.Reader) ([]T, error) {
	countBytes, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	count := int(binary.LittleEndian.Uint32(countBytes))

	storage, err := readChunk(r)
	if err != nil {
		return nil, err
	}

	var zero T
	elemSize := binary.Size(zero)
	capacity := 0
	if elemSize > 0 {
		capacity = len(storage) / elemSize
	}

	out := make([]T, capacity)
	if capacity > 0 {
		if err := binary.Read(bytes.NewReader(storage), binary.LittleEndian, out); err != nil {
			return nil, err
		}
	}
	return out[:count], nil
}

// Marshal encodes the store as active_count, next_id, then the four arrays
// each as a length-prefixed vector, matching the nested chunk format
// documented for World.Save.
func (s *Store[T]) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, int32(s.activeCount)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, int16(s.nextID)); err != nil {
		return nil, err
	}
	if err := writeVec(&buf, s.freeIDs); err != nil {
		return nil, err
	}
	if err := writeVec(&buf, s.sparse); err != nil {
		return nil, err
	}
	if err := writeVec(&buf, s.entities); err != nil {
		return nil, err
	}
	if err := writeVec(&buf, s.dense); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal restores a store from bytes produced by Marshal, replacing the
// receiver's contents entirely.
func (s *Store[T]) Unmarshal(data []byte) error {
	r := bytes.NewReader(data)
	var activeCount int32
	if err := binary.Read(r, binary.LittleEndian, &activeCount); err != nil {
		return err
	}
	var nextID int16
	if err := binary.Read(r, binary.LittleEndian, &nextID); err != nil {
		return err
	}
	freeIDs, err := readVec[Identifier](r)
	if err != nil {
		return err
	}
	sparse, err := readVec[Identifier](r)
	if err != nil {
		return err
	}
	entities, err := readVec[Identifier](r)
	if err != nil {
		return err
	}
	dense, err := readVec[T](r)
	if err != nil {
		return err
	}

	s.activeCount = int(activeCount)
	s.nextID = Identifier(nextID)
	s.freeIDs = freeIDs
	s.sparse = sparse
	s.entities = entities
	s.dense = dense
	return nil
}

// Save writes Marshal's output as a single length-prefixed chunk.
func (s *Store[T]) Save(w io.Writer) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return writeChunk(w, data)
}

// Load reads a chunk written by Save and restores it via Unmarshal.
func (s *Store[T]) Load(r io.Reader) error {
	data, err := readChunk(r)
	if err != nil {
		return err
	}
	return s.Unmarshal(data)
}
