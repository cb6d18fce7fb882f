// Package reveal computes the timing of the site's text reveal effects and
// the frames of the character scramble played when a heading re-enters the
// viewport.
package reveal

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// Line reveal: per-character and per-line entrance offsets.
	LineCharStep = 0.02
	LineStep     = 0.1

	// Word reveal: per-word and per-character entrance offsets.
	WordStep     = 0.08
	WordCharStep = 0.03

	// CharDuration is the entrance duration of a single glyph in seconds.
	CharDuration = 0.4

	// StaggerStep is the default offset between staggered blocks.
	StaggerStep = 0.08

	ScrambleCharset    = "abcdefghijklmnopqrstuvwxyz"
	ScrambleIterations = 3
	ScrambleTick       = 35 * time.Millisecond
	ScrambleDuration   = 280 * time.Millisecond

	// PhraseInterval is how long each rotating phrase stays visible.
	PhraseInterval = 8 * time.Second
)

// Glyph is one rendered character with its entrance delay in seconds.
type Glyph struct {
	Char  string
	Space bool
	Delay float64
}

// Line holds the glyphs of one line of a line reveal.
type Line struct {
	Glyphs []Glyph
	// Frames are the scramble frames for the line, final frame included.
	Frames []string
}

// Lines lays out a multi-line heading. Character i of line l enters after
// i*LineCharStep + l*LineStep seconds.
func Lines(lines []string) []Line {
	out := make([]Line, len(lines))
	for l, text := range lines {
		glyphs := make([]Glyph, 0, len(text))
		for i, r := range []rune(text) {
			glyphs = append(glyphs, Glyph{
				Char:  string(r),
				Space: r == ' ',
				Delay: round(float64(i)*LineCharStep + float64(l)*LineStep),
			})
		}
		out[l] = Line{Glyphs: glyphs}
	}
	return out
}

// Words lays out a phrase word by word. Character c of word w enters after
// w*WordStep + c*WordCharStep seconds.
func Words(text string) [][]Glyph {
	words := strings.Fields(text)
	out := make([][]Glyph, len(words))
	for w, word := range words {
		runes := []rune(word)
		glyphs := make([]Glyph, len(runes))
		for c, r := range runes {
			glyphs[c] = Glyph{
				Char:  string(r),
				Delay: round(float64(w)*WordStep + float64(c)*WordCharStep),
			}
		}
		out[w] = glyphs
	}
	return out
}

// Stagger returns the delay of the index-th block when blocks are offset by step.
func Stagger(index int, step float64) float64 {
	if index < 0 {
		return 0
	}
	return round(float64(index) * step)
}

// CSS formats seconds as a CSS time value, e.g. "0.16s".
func CSS(seconds float64) string {
	return strconv.FormatFloat(round(seconds), 'f', -1, 64) + "s"
}

func round(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}

// Scrambler produces scramble frames. It is safe for concurrent use.
type Scrambler struct {
	mu         sync.Mutex
	rng        *rand.Rand
	charset    []rune
	iterations int
}

// NewScrambler returns a Scrambler seeded with seed.
func NewScrambler(seed uint64) *Scrambler {
	return &Scrambler{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		charset:    []rune(ScrambleCharset),
		iterations: ScrambleIterations,
	}
}

// Frames returns ScrambleIterations scrambled copies of text followed by text
// itself. Spaces are never scrambled and every frame has the same rune count
// as text.
func (s *Scrambler) Frames(text string) []string {
	src := []rune(text)
	frames := make([]string, 0, s.iterations+1)

	s.mu.Lock()
	for i := 0; i < s.iterations; i++ {
		buf := make([]rune, len(src))
		for j, r := range src {
			if r == ' ' {
				buf[j] = r
				continue
			}
			buf[j] = s.charset[s.rng.IntN(len(s.charset))]
		}
		frames = append(frames, string(buf))
	}
	s.mu.Unlock()

	return append(frames, text)
}

// Scramble lays out lines and attaches scramble frames to each of them.
func (s *Scrambler) Scramble(lines []string) []Line {
	out := Lines(lines)
	for i, text := range lines {
		out[i].Frames = s.Frames(text)
	}
	return out
}
