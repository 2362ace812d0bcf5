package game

// Completion describes a finished level.
type Completion struct {
	Pack     string
	Level    string
	Index    int
	Frames   uint64 // Frames since the level was loaded, reveal included
	Attempts int    // Ball launches
	Stars    int
}

// Recorder is notified when a level is completed.
type Recorder interface {
	LevelCompleted(c Completion)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(c Completion)

func (f RecorderFunc) LevelCompleted(c Completion) {
	f(c)
}

// NopRecorder ignores completions.
type NopRecorder struct{}

func (NopRecorder) LevelCompleted(Completion) {}
