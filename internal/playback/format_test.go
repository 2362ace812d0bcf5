package playback

import (
	"errors"
	"testing"

	"github.com/vovakirdan/starline/internal/zmath"
)

func TestParseEntries(t *testing.T) {
	start, log, err := Parse("0.25 1.5 0.1 0.2 4 a 5 b 0.3 0.4 9 ")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if start != zmath.V3(0.25, 1.5, 0) {
		t.Errorf("start = %v, expected (0.25, 1.5, 0)", start)
	}

	want := []MouseState{
		{Position: zmath.V2(0.1, 0.2), Frame: 4, Kind: PenMove},
		{Frame: 5, Kind: PenUp},
		{Position: zmath.V2(0.3, 0.4), Frame: 9, Kind: PlaceCollectible},
	}
	if len(log) != len(want) {
		t.Fatalf("entries = %d, expected %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, log[i], want[i])
		}
	}
}

func TestParseTrailingNewline(t *testing.T) {
	_, log, err := Parse("1 1 0.5 0.5 3 \n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(log) != 1 {
		t.Errorf("entries = %d, expected 1", len(log))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"missing start y", "1"},
		{"bad start", "x 1"},
		{"bad frame", "1 1 a z"},
		{"negative frame", "1 1 a -3"},
		{"truncated move", "1 1 0.5 0.5"},
		{"truncated collectible", "1 1 b 0.5"},
		{"bad coordinate", "1 1 0.5 nope 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, log, err := Parse(tc.text)
			if err == nil {
				t.Fatal("Parse() succeeded, expected error")
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("error %v does not wrap ErrMalformedLevel", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %v is not a *ParseError", err)
			}
			if log != nil {
				t.Errorf("partial log returned: %v", log)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	start := zmath.V3(0.123456, 1.75, 0)
	log := []MouseState{
		{Position: zmath.V2(0.1, 0.2), Frame: 0, Kind: PenMove},
		{Position: zmath.V2(-0.333333, 1e-6), Frame: 0, Kind: PenMove},
		{Frame: 17, Kind: PenUp},
		{Position: zmath.V2(1.9999, 0.0001), Frame: 4000000000, Kind: PlaceCollectible},
		{Position: zmath.V2(3, 2), Frame: 4000000001, Kind: PenMove},
	}

	text := Encode(start, log)
	gotStart, gotLog, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(Encode()) failed: %v\ntext: %q", err, text)
	}
	if gotStart != start {
		t.Errorf("start = %v, expected %v", gotStart, start)
	}
	if len(gotLog) != len(log) {
		t.Fatalf("entries = %d, expected %d", len(gotLog), len(log))
	}
	for i := range log {
		if gotLog[i] != log[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, gotLog[i], log[i])
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	text := Encode(zmath.V3(1, 0.5, 0), []MouseState{
		{Position: zmath.V2(0.25, 1), Frame: 3, Kind: PenMove},
		{Frame: 4, Kind: PenUp},
		{Position: zmath.V2(1, 1), Frame: 8, Kind: PlaceCollectible},
	})
	want := "1 0.5 0.25 1 3 a 4 b 1 1 8 "
	if text != want {
		t.Errorf("Encode() = %q, expected %q", text, want)
	}
}
