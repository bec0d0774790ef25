package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp01(t *testing.T) {
	for in, want := range map[float32]float32{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1} {
		if got := Clamp01(in); got != want {
			t.Fatalf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(2, 6, 0); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := Lerp(2, 6, 1); got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestHorizontalDirectionForwardAtZeroYaw(t *testing.T) {
	dir := HorizontalDirection(mgl32.Vec2{0, 1}, 0)
	if !dir.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("expected forward to be -Z, got %v", dir)
	}
}

func TestHorizontalDirectionTurnedRight(t *testing.T) {
	dir := HorizontalDirection(mgl32.Vec2{0, 1}, -math32.Pi/2)
	if !dir.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected forward to be +X after turning right, got %v", dir)
	}
}

func TestHorizontalDirectionNormalisesDiagonal(t *testing.T) {
	dir := HorizontalDirection(mgl32.Vec2{1, 1}, 0)
	if !Float32ApproxEq(dir.Len(), 1) {
		t.Fatalf("expected unit length, got %v", dir.Len())
	}
	if dir.Y() != 0 {
		t.Fatalf("expected no vertical component, got %v", dir)
	}
}

func TestHorizontalDirectionZeroInput(t *testing.T) {
	if dir := HorizontalDirection(mgl32.Vec2{}, 1.2); dir != (mgl32.Vec3{}) {
		t.Fatalf("expected zero direction, got %v", dir)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := map[float32]float32{
		0:                  0,
		math32.Pi:          math32.Pi,
		-math32.Pi:         math32.Pi,
		3 * math32.Pi / 2:  -math32.Pi / 2,
		-3 * math32.Pi / 2: math32.Pi / 2,
	}
	for in, want := range cases {
		if got := WrapAngle(in); math32.Abs(got-want) > 1e-5 {
			t.Fatalf("WrapAngle(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFinite(t *testing.T) {
	if Finite(math32.NaN()) || Finite(math32.Inf(1)) || !Finite(1) {
		t.Fatal("Finite misclassified a value")
	}
}
