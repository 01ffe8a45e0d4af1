package surface

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpText
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	case OpLine:
		return "line"
	}
	return "unknown"
}

// Op is one recorded drawing call with the style in effect when it was made.
type Op struct {
	Kind      OpKind
	X, Y      float64
	X2, Y2    float64 // line end, or clear width/height
	R         float64
	Text      string
	Color     RGBA // fill for clear/circle/text, stroke for line
	LineWidth float64
	Font      string
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	fill, stroke RGBA
	lineWidth    float64
	font         string
	ops          []Op
}

func NewRecorder() *Recorder {
	return &Recorder{lineWidth: 1}
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpClear, X: x, Y: y, X2: w, Y2: h})
}

func (r *Recorder) SetFillStyle(c RGBA)    { r.fill = c }
func (r *Recorder) SetStrokeStyle(c RGBA)  { r.stroke = c }
func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *Recorder) SetFont(font string)    { r.font = font }

func (r *Recorder) FillCircle(x, y, rad float64) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: x, Y: y, R: rad, Color: r.fill})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: text, Color: r.fill, Font: r.font})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, X: x0, Y: y0, X2: x1, Y2: y1, Color: r.stroke, LineWidth: r.lineWidth})
}

func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() { r.ops = r.ops[:0] }
