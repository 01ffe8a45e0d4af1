// Package typewriter rotates a list of titles by typing them out one
// character at a time, holding, deleting them and moving to the next.
package typewriter

import "time"

// Timing controls the pace of the effect.
type Timing struct {
	Type   time.Duration // per character typed
	Delete time.Duration // per character deleted
	Hold   time.Duration // pause once a title is complete
	Next   time.Duration // pause before typing the next title
}

func DefaultTiming() Timing {
	return Timing{
		Type:   80 * time.Millisecond,
		Delete: 40 * time.Millisecond,
		Hold:   2000 * time.Millisecond,
		Next:   400 * time.Millisecond,
	}
}

var DefaultTitles = []string{
	"QA Tester",
	"Software Tester",
	"Defect Detective",
	"Test Case Designer",
	"Quality Advocate",
}

type Typewriter struct {
	titles   [][]rune
	timing   Timing
	title    int
	chars    int
	deleting bool
	text     string
}

// New returns a typewriter over titles. Empty titles are skipped; with
// nothing left it falls back to DefaultTitles.
func New(titles []string, timing Timing) *Typewriter {
	tw := &Typewriter{timing: timing}
	for _, t := range titles {
		if t != "" {
			tw.titles = append(tw.titles, []rune(t))
		}
	}
	if len(tw.titles) == 0 {
		for _, t := range DefaultTitles {
			tw.titles = append(tw.titles, []rune(t))
		}
	}
	return tw
}

// Step advances one character and returns the visible text and how long to
// wait before the next Step.
func (tw *Typewriter) Step() (string, time.Duration) {
	current := tw.titles[tw.title]

	var delay time.Duration
	if tw.deleting {
		tw.chars--
		delay = tw.timing.Delete
	} else {
		tw.chars++
		delay = tw.timing.Type
	}
	tw.text = string(current[:tw.chars])

	switch {
	case !tw.deleting && tw.chars == len(current):
		delay = tw.timing.Hold
		tw.deleting = true
	case tw.deleting && tw.chars == 0:
		tw.deleting = false
		tw.title = (tw.title + 1) % len(tw.titles)
		delay = tw.timing.Next
	}
	return tw.text, delay
}

// Text is the text shown after the last Step.
func (tw *Typewriter) Text() string { return tw.text }

// Title is the index of the title being typed or deleted.
func (tw *Typewriter) Title() int { return tw.title }
