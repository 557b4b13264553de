package layout

// Default engine settings.
const (
	// DefaultCursorWidth is the space reserved for the cursor at the start
	// of every line.
	DefaultCursorWidth = 1.0
)

// Engine lays out the glyphs of a text model into lines.
//
// An Engine is not safe for concurrent use. Layouts of different models
// need different engines or external synchronization.
type Engine struct {
	metrics Metrics

	layout             LayoutType
	cursorWidth        float64
	defaultLineSpacing float64
	defaultLineSize    float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLayout sets the layout type. The default is SingleLineBox.
func WithLayout(t LayoutType) Option {
	return func(e *Engine) {
		e.layout = t
	}
}

// WithCursorWidth sets the width reserved for the cursor.
func WithCursorWidth(w float64) Option {
	return func(e *Engine) {
		e.cursorWidth = w
	}
}

// WithDefaultLineSpacing sets the extra space added between lines.
func WithDefaultLineSpacing(s float64) Option {
	return func(e *Engine) {
		e.defaultLineSpacing = s
	}
}

// WithDefaultLineSize sets the minimum line height. Lines shorter than it
// get the difference as line spacing.
func WithDefaultLineSize(s float64) Option {
	return func(e *Engine) {
		e.defaultLineSize = s
	}
}

// NewEngine creates a layout engine using the metrics provider.
func NewEngine(metrics Metrics, opts ...Option) *Engine {
	e := &Engine{
		metrics:     metrics,
		layout:      SingleLineBox,
		cursorWidth: DefaultCursorWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLayout sets the layout type.
func (e *Engine) SetLayout(t LayoutType) { e.layout = t }

// Layout returns the layout type.
func (e *Engine) Layout() LayoutType { return e.layout }

// SetCursorWidth sets the width reserved for the cursor.
func (e *Engine) SetCursorWidth(w float64) { e.cursorWidth = w }

// CursorWidth returns the width reserved for the cursor.
func (e *Engine) CursorWidth() float64 { return e.cursorWidth }

// SetDefaultLineSpacing sets the extra space added between lines.
func (e *Engine) SetDefaultLineSpacing(s float64) { e.defaultLineSpacing = s }

// DefaultLineSpacing returns the extra space added between lines.
func (e *Engine) DefaultLineSpacing() float64 { return e.defaultLineSpacing }

// SetDefaultLineSize sets the minimum line height.
func (e *Engine) SetDefaultLineSize(s float64) { e.defaultLineSize = s }

// DefaultLineSize returns the minimum line height.
func (e *Engine) DefaultLineSize() float64 { return e.defaultLineSize }

// lineSpacing returns the spacing below a line with the given vertical
// extents and relative size.
func (e *Engine) lineSpacing(ascender, descender, relativeLineSize float64) float64 {
	height := ascender - descender
	spacing := e.defaultLineSpacing
	if height < e.defaultLineSize {
		spacing += e.defaultLineSize - height
	}
	return spacing + (relativeLineSize-1)*height
}
