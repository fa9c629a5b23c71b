package geometry

import (
	"testing"

	"collide3d/numeric"
)

func u(i int32) numeric.Unit { return numeric.FromInt(i) }
func vec(x, y, z int32) numeric.Vec3 {
	return numeric.Vec3{X: u(x), Y: u(y), Z: u(z)}
}

func TestClosestPointOnSegmentClampsToEndpoints(t *testing.T) {
	a, b := vec(0, 0, 0), vec(10, 0, 0)
	if got := ClosestPointOnSegment(vec(-5, 0, 0), a, b); got != a {
		t.Fatalf("got %v, want %v", got, a)
	}
	if got := ClosestPointOnSegment(vec(20, 0, 0), a, b); got != b {
		t.Fatalf("got %v, want %v", got, b)
	}
}

func TestClosestPointOnSegmentMidpoint(t *testing.T) {
	a, b := vec(0, 0, 0), vec(10, 0, 0)
	got := ClosestPointOnSegment(vec(5, 3, 0), a, b)
	want := vec(5, 0, 0)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestClosestPointOnSegmentDegenerate(t *testing.T) {
	a := vec(1, 1, 1)
	got := ClosestPointOnSegment(vec(9, 9, 9), a, a)
	if got != a {
		t.Fatalf("degenerate segment should return the shared endpoint, got %v", got)
	}
}

func TestClosestPointsOnSegmentsParallel(t *testing.T) {
	c1, c2 := ClosestPointsOnSegments(vec(0, 0, 0), vec(10, 0, 0), vec(0, 5, 0), vec(10, 5, 0))
	if c1.Y != 0 || c2.Y != u(5) {
		t.Fatalf("expected parallel segments to keep their own Y, got c1=%v c2=%v", c1, c2)
	}
}

func TestClosestPointsOnSegmentsCrossing(t *testing.T) {
	c1, c2 := ClosestPointsOnSegments(vec(-5, 0, 0), vec(5, 0, 0), vec(0, -5, 0), vec(0, 5, 0))
	if c1 != (numeric.Vec3{}) || c2 != (numeric.Vec3{}) {
		t.Fatalf("crossing segments should meet at origin, got c1=%v c2=%v", c1, c2)
	}
}

func TestClosestPointOnOBBInsideReturnsPoint(t *testing.T) {
	box := OBB{Center: vec(0, 0, 0), HalfExtents: vec(2, 2, 2), Rotation: numeric.Identity()}
	p := vec(1, 1, 1)
	if got := ClosestPointOnOBB(p, box); got != p {
		t.Fatalf("interior point should map to itself, got %v", got)
	}
}

func TestClosestPointOnOBBClampsOutside(t *testing.T) {
	box := OBB{Center: vec(0, 0, 0), HalfExtents: vec(2, 2, 2), Rotation: numeric.Identity()}
	got := ClosestPointOnOBB(vec(10, 0, 0), box)
	want := vec(2, 0, 0)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestClosestPointOnOBBRotated(t *testing.T) {
	box := OBB{Center: vec(0, 0, 0), HalfExtents: vec(1, 1, 1), Rotation: numeric.RotateZ(90)}
	got := ClosestPointOnOBB(vec(0, 10, 0), box)
	want := vec(0, 1, 0)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
