package playback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/starline/internal/zmath"
)

// Level text format:
//
//	<start_x> <start_y> <entry>*
//
// where each entry is "a <frame>" (pen up), "b <x> <y> <frame>" (collectible)
// or "<x> <y> <frame>" (pen move). Tokens are separated by single spaces and
// an empty token where an entry would start is ignored.
const (
	tagPenUp       = "a"
	tagCollectible = "b"
	separator      = " "
)

// ErrMalformedLevel is wrapped by every parse failure.
var ErrMalformedLevel = errors.New("malformed level")

// ParseError describes where a level text failed to parse.
type ParseError struct {
	Token int    // Index of the offending token
	Text  string // Offending token text (empty when input ended early)
	Err   error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("playback: token %d: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("playback: token %d %q: %v", e.Token, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLevel, e.Err}
}

var errUnexpectedEnd = errors.New("unexpected end of input")

type tokenizer struct {
	tokens []string
	pos    int
}

func (t *tokenizer) done() bool {
	return t.pos >= len(t.tokens)
}

func (t *tokenizer) next() (string, error) {
	if t.done() {
		return "", &ParseError{Token: t.pos, Err: errUnexpectedEnd}
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, nil
}

func (t *tokenizer) float() (float32, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return parseFloat(tok, t.pos-1)
}

func (t *tokenizer) frame() (uint32, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Token: t.pos - 1, Text: tok, Err: err}
	}
	return uint32(v), nil
}

func parseFloat(tok string, idx int) (float32, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, &ParseError{Token: idx, Text: tok, Err: err}
	}
	return float32(v), nil
}

// Parse decodes a level text into its start position and action log.
// Any malformed token aborts the whole parse.
func Parse(text string) (zmath.Vector3, []MouseState, error) {
	text = strings.TrimRight(text, "\r\n\t")
	t := &tokenizer{tokens: strings.Split(text, separator)}

	sx, err := t.float()
	if err != nil {
		return zmath.Zero, nil, err
	}
	sy, err := t.float()
	if err != nil {
		return zmath.Zero, nil, err
	}
	start := zmath.V3(sx, sy, 0)

	var entries []MouseState
	for !t.done() {
		first, _ := t.next()

		var s MouseState
		switch first {
		case "":
			continue
		case tagPenUp:
			s.Kind = PenUp
		case tagCollectible:
			s.Kind = PlaceCollectible
			if s.Position.X, err = t.float(); err != nil {
				return zmath.Zero, nil, err
			}
			if s.Position.Y, err = t.float(); err != nil {
				return zmath.Zero, nil, err
			}
		default:
			s.Kind = PenMove
			if s.Position.X, err = parseFloat(first, t.pos-1); err != nil {
				return zmath.Zero, nil, err
			}
			if s.Position.Y, err = t.float(); err != nil {
				return zmath.Zero, nil, err
			}
		}

		if s.Frame, err = t.frame(); err != nil {
			return zmath.Zero, nil, err
		}
		entries = append(entries, s)
	}

	return start, entries, nil
}

// Encode writes start and entries in the level text format. The output
// parses back to exactly the same values.
func Encode(start zmath.Vector3, entries []MouseState) string {
	var sb strings.Builder
	sb.Grow(16 + len(entries)*24)

	writeFloat(&sb, start.X)
	writeFloat(&sb, start.Y)
	for _, s := range entries {
		switch s.Kind {
		case PenUp:
			sb.WriteString(tagPenUp + separator)
		case PlaceCollectible:
			sb.WriteString(tagCollectible + separator)
			writeFloat(&sb, s.Position.X)
			writeFloat(&sb, s.Position.Y)
		default:
			writeFloat(&sb, s.Position.X)
			writeFloat(&sb, s.Position.Y)
		}
		sb.WriteString(strconv.FormatUint(uint64(s.Frame), 10))
		sb.WriteString(separator)
	}
	return sb.String()
}

// writeFloat writes the shortest decimal that round-trips as float32,
// never in exponent form.
func writeFloat(sb *strings.Builder, v float32) {
	sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	sb.WriteString(separator)
}
