package reveal

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Delays(t *testing.T) {
	lines := Lines([]string{"ab c", "de"})
	require.Len(t, lines, 2)
	require.Len(t, lines[0].Glyphs, 4)
	require.Len(t, lines[1].Glyphs, 2)

	assert.Equal(t, 0.0, lines[0].Glyphs[0].Delay)
	assert.Equal(t, 0.02, lines[0].Glyphs[1].Delay)
	assert.True(t, lines[0].Glyphs[2].Space)
	assert.Equal(t, 0.06, lines[0].Glyphs[3].Delay)

	assert.Equal(t, 0.1, lines[1].Glyphs[0].Delay)
	assert.Equal(t, 0.12, lines[1].Glyphs[1].Delay)
	assert.Nil(t, lines[0].Frames)
}

func TestWords_Delays(t *testing.T) {
	words := Words("Deep  learning")
	require.Len(t, words, 2)
	assert.Equal(t, "D", words[0][0].Char)
	assert.Equal(t, 0.0, words[0][0].Delay)
	assert.Equal(t, 0.09, words[0][3].Delay)
	assert.Equal(t, 0.08, words[1][0].Delay)
	assert.Equal(t, 0.11, words[1][1].Delay)
}

func TestStaggerAndCSS(t *testing.T) {
	assert.Equal(t, 0.0, Stagger(0, StaggerStep))
	assert.Equal(t, 0.24, Stagger(3, StaggerStep))
	assert.Equal(t, 0.0, Stagger(-2, StaggerStep))

	assert.Equal(t, "0s", CSS(0))
	assert.Equal(t, "0.16s", CSS(0.16))
	assert.Equal(t, "0.3s", CSS(0.1*3))
}

func TestScrambler_Frames(t *testing.T) {
	s := NewScrambler(42)
	text := "feel inevitable."
	frames := s.Frames(text)

	require.Len(t, frames, ScrambleIterations+1)
	assert.Equal(t, text, frames[len(frames)-1])

	spaceAt := strings.IndexRune(text, ' ')
	for _, f := range frames[:ScrambleIterations] {
		assert.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(f))
		assert.Equal(t, ' ', []rune(f)[spaceAt])
		for i, r := range f {
			if i == spaceAt {
				continue
			}
			assert.Contains(t, ScrambleCharset, string(r))
		}
	}
}

func TestScrambler_Deterministic(t *testing.T) {
	a := NewScrambler(7).Frames("signal")
	b := NewScrambler(7).Frames("signal")
	assert.Equal(t, a, b)
}

func TestScrambler_DurationMatchesTicks(t *testing.T) {
	assert.LessOrEqual(t, int64(ScrambleTick*ScrambleIterations), int64(ScrambleDuration))
}

func TestScrambler_Concurrent(t *testing.T) {
	s := NewScrambler(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				frames := s.Frames("beyond 5G networks.")
				assert.Len(t, frames, ScrambleIterations+1)
			}
		}()
	}
	wg.Wait()
}

func TestScrambler_Scramble(t *testing.T) {
	lines := NewScrambler(3).Scramble([]string{"one", "two words"})
	require.Len(t, lines, 2)
	assert.Len(t, lines[1].Frames, ScrambleIterations+1)
	assert.Equal(t, "two words", lines[1].Frames[ScrambleIterations])
	assert.Equal(t, 0.1, lines[1].Glyphs[0].Delay)
}
