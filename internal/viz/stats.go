package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/databg/internal/engine"
)

const (
	historyCapacity = 240
	graphHeight     = 6
)

// linkHistory records the links drawn by recent frames.
type linkHistory struct {
	links []float64
	last  engine.FrameStats
}

func (h *linkHistory) OnFrame(stats engine.FrameStats) {
	h.last = stats
	h.links = append(h.links, float64(stats.Links))
	if len(h.links) > historyCapacity {
		h.links = h.links[1:]
	}
}

func (h *linkHistory) plot(width int) string {
	if len(h.links) < 2 {
		return labelStyle.Render("collecting frames...")
	}
	w := width - 10
	if w < 10 {
		w = 10
	}
	chart := asciigraph.Plot(h.links,
		asciigraph.Height(graphHeight),
		asciigraph.Width(w),
		asciigraph.Caption(fmt.Sprintf("links per frame (last %d)", len(h.links))))
	return graphStyle.Render(chart)
}
