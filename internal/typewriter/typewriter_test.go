package typewriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypewriterCycle(t *testing.T) {
	tw := New([]string{"ab", "c"}, DefaultTiming())

	type step struct {
		text  string
		delay time.Duration
	}
	want := []step{
		{"a", 80 * time.Millisecond},
		{"ab", 2000 * time.Millisecond},
		{"a", 40 * time.Millisecond},
		{"", 400 * time.Millisecond},
		{"c", 2000 * time.Millisecond},
		{"", 400 * time.Millisecond},
		{"a", 80 * time.Millisecond},
	}

	for i, w := range want {
		text, delay := tw.Step()
		assert.Equal(t, w.text, text, "step %d text", i)
		assert.Equal(t, w.delay, delay, "step %d delay", i)
	}
	assert.Equal(t, 0, tw.Title())
}

func TestTypewriterDefaults(t *testing.T) {
	tw := New([]string{"", ""}, DefaultTiming())
	text, _ := tw.Step()
	assert.Equal(t, "Q", text)
	assert.Equal(t, "Q", tw.Text())
}

func TestTypewriterUnicode(t *testing.T) {
	tw := New([]string{"héllo"}, DefaultTiming())
	tw.Step()
	text, _ := tw.Step()
	assert.Equal(t, "hé", text)
}
