package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/zmath"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func floor() []zmath.Vector3 {
	return []zmath.Vector3{zmath.V3(-1, 0, 0), zmath.V3(1, 0, 0)}
}

func TestFreeFall(t *testing.T) {
	b := NewBall(zmath.V3(0, 1, 0))
	b.Moving = true
	for i := 0; i < 3; i++ {
		b.Step()
	}
	if !near(b.Velocity.Y, -3*Gravity, 1e-9) {
		t.Errorf("Velocity.Y = %v, expected %v", b.Velocity.Y, -3*Gravity)
	}
	// 1+2+3 gravity increments of displacement.
	if !near(b.Position.Y, 1-6*Gravity, 1e-6) {
		t.Errorf("Position.Y = %v, expected %v", b.Position.Y, 1-6*Gravity)
	}
	if b.Grounded() {
		t.Error("ball in free fall should not be grounded")
	}
}

func TestBounceReversesNormalVelocity(t *testing.T) {
	b := NewBall(zmath.V3(0, 0.05, 0))
	b.Velocity = zmath.V3(0, -0.01, 0)

	b.Step(floor())

	incoming := float32(-0.01 - Gravity)
	want := incoming - incoming*Bounce
	if b.Velocity.Y <= 0 {
		t.Fatalf("Velocity.Y = %v, expected upward", b.Velocity.Y)
	}
	if !near(b.Velocity.Y, want, 1e-6) {
		t.Errorf("Velocity.Y = %v, expected %v", b.Velocity.Y, want)
	}
	if !b.Grounded() {
		t.Error("ball should be grounded after contact")
	}
}

func TestContactNudge(t *testing.T) {
	wall := []zmath.Vector3{zmath.V3(0, -1, 0), zmath.V3(0, 1, 0)}
	b := NewBall(zmath.V3(0.05, 0.5, 0))

	b.Step(wall)

	// Gravity is tangent to the wall, so only the nudge moves X.
	if !near(b.Position.X-0.05, ContactNudge, 1e-7) {
		t.Errorf("X displacement = %v, expected %v", b.Position.X-0.05, ContactNudge)
	}
	if b.Velocity.X != 0 {
		t.Errorf("Velocity.X = %v, expected 0", b.Velocity.X)
	}
}

func TestSinkTolerance(t *testing.T) {
	tests := []struct {
		name    string
		y       float32
		contact bool
	}{
		{"well inside", 0.05, true},
		{"just inside", 0.0685, true},
		{"within tolerance band", 0.0695, false},
		{"clear", 0.2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(zmath.V3(0, tc.y, 0))
			b.Step(floor())
			if b.Grounded() != tc.contact {
				t.Errorf("Grounded() = %v, expected %v", b.Grounded(), tc.contact)
			}
		})
	}
}

func TestDegenerateSegmentIgnored(t *testing.T) {
	dot := []zmath.Vector3{zmath.V3(0, 0, 0), zmath.V3(0, 0, 0)}
	b := NewBall(zmath.V3(0, 0.03, 0))

	b.Step(dot)

	if b.Grounded() {
		t.Error("zero-length segment should not collide")
	}
	if !near(b.Velocity.Y, -Gravity, 1e-9) {
		t.Errorf("Velocity.Y = %v, expected %v", b.Velocity.Y, -Gravity)
	}
}

func TestBothSegmentSetsCollide(t *testing.T) {
	wall := []zmath.Vector3{zmath.V3(0, -1, 0), zmath.V3(0, 1, 0)}
	b := NewBall(zmath.V3(0.05, 0.05, 0))
	b.Velocity = zmath.V3(-0.01, -0.01, 0)

	b.Step(floor(), wall)

	if b.Velocity.X <= 0 || b.Velocity.Y <= 0 {
		t.Errorf("Velocity = %v, expected both components reflected", b.Velocity)
	}
}

func TestGroundedDecays(t *testing.T) {
	b := NewBall(zmath.V3(0, 0.05, 0))
	b.Step(floor())
	for i := 0; i < GroundedFrames-1; i++ {
		b.Step()
		if !b.Grounded() {
			t.Fatalf("Grounded() = false after %d free frames, expected true", i+1)
		}
	}
	b.Step()
	if b.Grounded() {
		t.Error("Grounded() = true after the contact window expired")
	}
}

func TestCheckCollectibles(t *testing.T) {
	lvl := level.New(zmath.Zero, level.DefaultLineColor, level.DefaultUserColor)
	lvl.AddCollectible(level.NewCollectible(zmath.V3(0.5, 0.5, 0), 0))
	lvl.AddCollectible(level.NewCollectible(zmath.V3(0.5, 0.55, 0), 0))
	lvl.AddCollectible(level.NewCollectible(zmath.V3(1.5, 1.5, 0), 0))

	b := NewBall(zmath.V3(0.5, 0.5, 0))
	hit, height := b.CheckCollectibles(lvl)
	if !hit {
		t.Fatal("CheckCollectibles() = false, expected true")
	}
	if height != 0.55 {
		t.Errorf("height = %v, expected 0.55", height)
	}
	if lvl.Collected != 2 {
		t.Errorf("Collected = %d, expected 2", lvl.Collected)
	}
	if lvl.Complete {
		t.Error("level should not be complete with one star left")
	}
	if lvl.Collectibles[0].Alpha != 0.1 {
		t.Errorf("collected alpha = %v, expected 0.1", lvl.Collectibles[0].Alpha)
	}

	hit, _ = b.CheckCollectibles(lvl)
	if hit || lvl.Collected != 2 {
		t.Errorf("second call: hit=%v Collected=%d, expected false/2", hit, lvl.Collected)
	}

	b.Position = zmath.V3(1.5, 1.5, 0)
	b.CheckCollectibles(lvl)
	if !lvl.Complete {
		t.Error("level should be complete")
	}
}

func TestCheckCollectiblesReportsHighest(t *testing.T) {
	lvl := level.New(zmath.Zero, level.DefaultLineColor, level.DefaultUserColor)
	lvl.AddCollectible(level.NewCollectible(zmath.V3(0.5, 0.55, 0), 0))
	lvl.AddCollectible(level.NewCollectible(zmath.V3(0.5, 0.5, 0), 0))
	lvl.AddCollectible(level.NewCollectible(zmath.V3(0.5, 0.45, 0), 0))

	b := NewBall(zmath.V3(0.5, 0.5, 0))
	hit, height := b.CheckCollectibles(lvl)
	if !hit || lvl.Collected != 3 {
		t.Fatalf("hit=%v Collected=%d, expected true/3", hit, lvl.Collected)
	}
	if height != 0.55 {
		t.Errorf("height = %v, expected 0.55", height)
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		pos  zmath.Vector3
		want bool
	}{
		{zmath.V3(1, 1, 0), false},
		{zmath.V3(-1, 0, 0), false},
		{zmath.V3(3, 100, 0), false},
		{zmath.V3(-1.01, 1, 0), true},
		{zmath.V3(3.01, 1, 0), true},
		{zmath.V3(1, -0.01, 0), true},
	}

	for _, tc := range tests {
		b := NewBall(tc.pos)
		if got := b.OutOfBounds(DefaultBounds); got != tc.want {
			t.Errorf("OutOfBounds(%v) = %v, expected %v", tc.pos, got, tc.want)
		}
	}
}

func TestResetAndFade(t *testing.T) {
	start := zmath.V3(0.2, 1.2, 0)
	b := NewBall(start)

	b.Reset(start)
	if b.Alpha != 1 {
		t.Errorf("resting reset Alpha = %v, expected 1", b.Alpha)
	}

	b.Launch(start)
	b.Step()
	b.Reset(start)
	if b.Moving || b.Position != start || b.Velocity != zmath.Zero {
		t.Errorf("after Reset: %+v", b)
	}
	if b.Alpha != resetAlpha {
		t.Errorf("Alpha = %v, expected %v", b.Alpha, resetAlpha)
	}

	for i := 0; i < 100; i++ {
		b.FadeIn()
	}
	if b.Alpha != 1 {
		t.Errorf("Alpha = %v after fade, expected 1", b.Alpha)
	}
}

func TestSpeed(t *testing.T) {
	b := NewBall(zmath.Zero)
	b.Velocity = zmath.V3(0.003, 0.004, 0)
	if !near(b.Speed(), 0.005, 1e-7) {
		t.Errorf("Speed() = %v, expected 0.005", b.Speed())
	}
}
