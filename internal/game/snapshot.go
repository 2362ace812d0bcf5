package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation state for determinism checks.
// Visual-only values (alpha fades) are included since they are also driven
// by the frame loop.
type Snapshot struct {
	Frame      uint64
	LevelIndex int
	LevelAlpha float32

	BallX, BallY   float32
	BallVX, BallVY float32
	BallMoving     bool

	Setup     bool
	Collected int
	Complete  bool

	PlaybackIndex int
	PlaybackFrame uint32
	PlaybackDone  bool

	// Segment endpoints as x,y pairs.
	LevelPoints []float32
	UserPoints  []float32

	// Each collectible is 3 values: X, Y, Collected (0 or 1).
	CollectibleData []float32
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:         s.frame,
		LevelIndex:    s.index,
		LevelAlpha:    s.LevelAlpha,
		BallX:         s.Ball.Position.X,
		BallY:         s.Ball.Position.Y,
		BallVX:        s.Ball.Velocity.X,
		BallVY:        s.Ball.Velocity.Y,
		BallMoving:    s.Ball.Moving,
		Setup:         s.Level.Setup,
		Collected:     s.Level.Collected,
		Complete:      s.Level.Complete,
		PlaybackIndex: s.Playback.CurrentIndex,
		PlaybackFrame: s.Playback.CurrentFrame,
		PlaybackDone:  s.Playback.Complete,
	}

	for _, p := range s.LevelLines.Points() {
		snap.LevelPoints = append(snap.LevelPoints, p.X, p.Y)
	}
	for _, p := range s.UserLines.Points() {
		snap.UserPoints = append(snap.UserPoints, p.X, p.Y)
	}
	for _, c := range s.Level.Collectibles {
		var collected float32
		if c.Collected {
			collected = 1
		}
		snap.CollectibleData = append(snap.CollectibleData, c.Position.X, c.Position.Y, collected)
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putF32 := func(v float32) {
		putU64(uint64(math.Float32bits(v)))
	}
	putBool := func(v bool) {
		if v {
			putU64(1)
		} else {
			putU64(0)
		}
	}

	putU64(snap.Frame)
	putU64(uint64(snap.LevelIndex)) //#nosec G115 -- hash computation
	putF32(snap.LevelAlpha)
	putF32(snap.BallX)
	putF32(snap.BallY)
	putF32(snap.BallVX)
	putF32(snap.BallVY)
	putBool(snap.BallMoving)
	putBool(snap.Setup)
	putU64(uint64(snap.Collected)) //#nosec G115 -- hash computation
	putBool(snap.Complete)
	putU64(uint64(snap.PlaybackIndex)) //#nosec G115 -- hash computation
	putU64(uint64(snap.PlaybackFrame))
	putBool(snap.PlaybackDone)

	for _, data := range [][]float32{snap.LevelPoints, snap.UserPoints, snap.CollectibleData} {
		putU64(uint64(len(data)))
		for _, v := range data {
			putF32(v)
		}
	}
	return h.Sum64()
}
