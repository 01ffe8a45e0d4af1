package engine_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/databg/internal/engine"
	"github.com/san-kum/databg/internal/field"
	"github.com/san-kum/databg/internal/surface"
	"github.com/san-kum/databg/internal/theme"
)

// switchable counts reads so tests can check the theme is read once a frame.
type switchable struct {
	current theme.Theme
	reads   int
}

func (s *switchable) Theme() theme.Theme {
	s.reads++
	return s.current
}

var _ = Describe("Engine", func() {
	var (
		scene  *field.Scene
		rec    *surface.Recorder
		themes *switchable
		queue  *engine.FrameQueue
		eng    *engine.Engine
		frames []engine.FrameStats
		now    time.Time
	)

	BeforeEach(func() {
		scene = field.NewScene(800, 600, rand.New(rand.NewSource(1)), field.DefaultParams(), field.DefaultPalettes())
		rec = surface.NewRecorder()
		themes = &switchable{current: theme.Dark}
		queue = engine.NewFrameQueue()
		frames = nil
		now = time.Unix(0, 0)
		eng = engine.New(scene, rec, themes, queue, engine.WithObserver(engine.ObserverFunc(func(s engine.FrameStats) {
			frames = append(frames, s)
		})))
	})

	Describe("lifecycle", func() {
		It("requests exactly one frame on start", func() {
			Expect(eng.Start()).To(Succeed())
			Expect(eng.Running()).To(BeTrue())
			Expect(queue.Pending()).To(Equal(1))
		})

		It("reschedules itself after every frame", func() {
			Expect(eng.Start()).To(Succeed())
			for i := 0; i < 5; i++ {
				Expect(queue.Flush(now)).To(Equal(1))
				Expect(queue.Pending()).To(Equal(1))
			}
			Expect(frames).To(HaveLen(5))
			Expect(frames[4].Seq).To(Equal(uint64(5)))
		})

		It("runs no frame after stop", func() {
			Expect(eng.Start()).To(Succeed())
			queue.Flush(now)
			Expect(eng.Stop()).To(Succeed())

			Expect(queue.Pending()).To(BeZero())
			Expect(queue.Flush(now)).To(BeZero())
			Expect(frames).To(HaveLen(1))
		})

		It("rejects double start and idle stop", func() {
			Expect(eng.Stop()).To(MatchError(engine.ErrNotRunning))
			Expect(eng.Start()).To(Succeed())
			Expect(eng.Start()).To(MatchError(engine.ErrAlreadyRunning))
			Expect(queue.Pending()).To(Equal(1))
		})

		It("can be restarted", func() {
			Expect(eng.Start()).To(Succeed())
			Expect(eng.Stop()).To(Succeed())
			Expect(eng.Start()).To(Succeed())
			queue.Flush(now)
			Expect(frames).To(HaveLen(1))
		})

		It("does not reschedule when stopped from inside a frame", func() {
			eng.AddObserver(engine.ObserverFunc(func(engine.FrameStats) {
				_ = eng.Stop()
			}))
			Expect(eng.Start()).To(Succeed())
			queue.Flush(now)
			Expect(queue.Pending()).To(BeZero())
			Expect(eng.Running()).To(BeFalse())
		})

		It("keeps a single loop when restarted from inside a frame", func() {
			restarted := false
			eng.AddObserver(engine.ObserverFunc(func(engine.FrameStats) {
				if restarted {
					return
				}
				restarted = true
				Expect(eng.Stop()).To(Succeed())
				Expect(eng.Start()).To(Succeed())
			}))
			Expect(eng.Start()).To(Succeed())

			queue.Flush(now)
			Expect(queue.Pending()).To(Equal(1))
			queue.Flush(now)
			Expect(queue.Pending()).To(Equal(1))

			Expect(eng.Stop()).To(Succeed())
			Expect(queue.Pending()).To(BeZero())
		})
	})

	Describe("a frame", func() {
		It("clears, then draws columns, then particles, then links", func() {
			eng.Frame(now)
			ops := rec.Ops()
			Expect(ops).NotTo(BeEmpty())

			Expect(ops[0].Kind).To(Equal(surface.OpClear))
			Expect(ops[0].X2).To(Equal(800.0))
			Expect(ops[0].Y2).To(Equal(600.0))

			// phase: 0 text, 1 circles, 2 lines; it must never go backwards
			phase := 0
			for _, op := range ops[1:] {
				var p int
				switch op.Kind {
				case surface.OpText:
					p = 0
				case surface.OpCircle:
					p = 1
				case surface.OpLine:
					p = 2
				default:
					Fail("unexpected op " + op.Kind.String())
				}
				Expect(p).To(BeNumerically(">=", phase))
				phase = p
			}
		})

		It("draws every glyph and every particle", func() {
			eng.Frame(now)

			glyphs := 0
			for _, c := range scene.Columns() {
				glyphs += c.Len()
			}
			Expect(rec.Count(surface.OpText)).To(Equal(glyphs))
			Expect(rec.Count(surface.OpCircle)).To(BeNumerically(">=", len(scene.Particles())))
		})

		It("reports the links it drew", func() {
			stats := eng.Frame(now)
			Expect(stats.Links).To(Equal(rec.Count(surface.OpLine)))
			Expect(stats.Particles).To(Equal(60))
			Expect(stats.Columns).To(Equal(10))
			Expect(stats.At).To(Equal(now))
		})

		It("reads the theme once per frame and follows changes", func() {
			eng.Frame(now)
			Expect(themes.reads).To(Equal(1))
			Expect(frames[0].Theme).To(Equal(theme.Dark))

			themes.current = theme.Light
			rec.Reset()
			eng.Frame(now)
			Expect(themes.reads).To(Equal(2))
			Expect(frames[1].Theme).To(Equal(theme.Light))

			for _, op := range rec.Ops() {
				if op.Kind == surface.OpText {
					Expect(op.Color.R).To(BeEquivalentTo(0))
					Expect(op.Color.G).To(BeEquivalentTo(119))
					Expect(op.Color.B).To(BeEquivalentTo(182))
				}
			}
		})

		It("falls back to dark for an unknown theme", func() {
			themes.current = theme.Theme("mauve")
			stats := eng.Frame(now)
			Expect(stats.Theme).To(Equal(theme.Dark))
		})
	})

	Describe("resize", func() {
		It("rebuilds both pools for the new viewport", func() {
			before := scene.Particles()[0]
			eng.Resize(1600, 1200)

			Expect(scene.Particles()).To(HaveLen(200))
			Expect(scene.Columns()).To(HaveLen(20))
			Expect(scene.Particles()).NotTo(ContainElement(BeIdenticalTo(before)))

			eng.Frame(now)
			Expect(rec.Ops()[0].X2).To(Equal(1600.0))
			Expect(rec.Ops()[0].Y2).To(Equal(1200.0))
		})

		It("keeps a running loop running", func() {
			Expect(eng.Start()).To(Succeed())
			queue.Flush(now)
			eng.Resize(400, 300)
			queue.Flush(now)
			Expect(frames).To(HaveLen(2))
			Expect(frames[1].Particles).To(Equal(15))
		})
	})
})
