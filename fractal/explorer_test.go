package fractal

import (
	"testing"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

// smallView is a 160x120 screen fully covered by a 1.6x1.2 grid.
func smallView() fluffy.ViewConfig {
	cfg := fluffy.DefaultViewConfig()
	cfg.ScreenWidth = 160
	cfg.ScreenHeight = 120
	cfg.Grid.GridDimensions = fluffy.Vector(1.6, 1.2, 0)
	return cfg
}

func newTestExplorer(t *testing.T, opts ...ExplorerOption) *Explorer {
	t.Helper()
	opts = append(opts, WithCanvasOptions(WithThreads(4)))
	e, err := NewExplorer(smallView(), opts...)
	if err != nil {
		t.Fatalf("NewExplorer() error = %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func mustFrame(t *testing.T, e *Explorer) Frame {
	t.Helper()
	f, err := e.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	return f
}

func mustApply(t *testing.T, e *Explorer, ev Event) bool {
	t.Helper()
	changed, err := e.Apply(ev)
	if err != nil {
		t.Fatalf("Apply(%v) error = %v", ev.Kind, err)
	}
	return changed
}

func TestExplorerCanvas(t *testing.T) {
	e := newTestExplorer(t)
	c, err := e.Canvas()
	if err != nil {
		t.Fatalf("Canvas() error = %v", err)
	}
	if c.Width() != 160 || c.Height() != 120 {
		t.Errorf("canvas = %dx%d, want 160x120", c.Width(), c.Height())
	}
	if c.PosUL != fluffy.Point(0, 0, 0) {
		t.Errorf("canvas UL = %v, want origin", c.PosUL)
	}
	if c.NThreads != 4 {
		t.Errorf("NThreads = %d, want 4", c.NThreads)
	}
}

func TestExplorerFrameCaching(t *testing.T) {
	e := newTestExplorer(t)
	first := mustFrame(t, e)
	if !first.Rendered {
		t.Fatal("first Frame() was not rendered")
	}
	if mustFrame(t, e).Rendered {
		t.Error("second Frame() re-rendered without a change")
	}

	if !mustApply(t, e, ConstantDelta(0.01, 0)) {
		t.Error("ConstantDelta reported no change")
	}
	if got, want := e.Constant(), (Complex{Re: DefaultConstant.Re + 0.01, Im: DefaultConstant.Im}); got != want {
		t.Errorf("Constant() = %v, want %v", got, want)
	}
	next := mustFrame(t, e)
	if !next.Rendered || next.Buffer != first.Buffer {
		t.Errorf("constant change: Rendered=%v sameBuffer=%v, want true and true", next.Rendered, next.Buffer == first.Buffer)
	}
}

func TestExplorerZoomKeepsBuffer(t *testing.T) {
	e := newTestExplorer(t)
	first := mustFrame(t, e)
	mustApply(t, e, ZoomIn())
	next := mustFrame(t, e)
	if !next.Rendered {
		t.Error("zoom did not re-render")
	}
	if next.Buffer != first.Buffer {
		t.Error("zoom reallocated the buffer although the canvas size is unchanged")
	}
}

func TestExplorerRecenter(t *testing.T) {
	e := newTestExplorer(t)
	mustFrame(t, e)

	// The screen centre is the current grid centre, so the window does not
	// move; the session is still invalidated.
	if !mustApply(t, e, Recenter(80, 60)) {
		t.Fatal("Recenter inside the grid reported no change")
	}
	if !mustFrame(t, e).Rendered {
		t.Error("Recenter did not force a re-render")
	}

	if mustApply(t, e, Recenter(-10, -10)) {
		t.Error("Recenter outside the grid reported a change")
	}
	if mustFrame(t, e).Rendered {
		t.Error("ignored Recenter re-rendered")
	}
}

func TestExplorerResize(t *testing.T) {
	e := newTestExplorer(t)
	first := mustFrame(t, e)
	mustApply(t, e, Resize(80, 60))
	next := mustFrame(t, e)
	if next.Buffer == first.Buffer {
		t.Error("resize reused the old buffer")
	}
	if w, h := next.Buffer.Width(), next.Buffer.Height(); w != 80 || h != 60 {
		t.Errorf("buffer = %dx%d, want 80x60", w, h)
	}
	if _, err := e.Apply(Resize(0, 60)); err == nil {
		t.Error("Apply(Resize(0, 60)) succeeded")
	}
}

func TestExplorerAutoWalk(t *testing.T) {
	walk := ConstantWalk{
		Min:     Complex{Re: -1, Im: -1},
		Max:     Complex{Re: 1, Im: 1},
		Step:    Complex{Re: 0.25, Im: 0.25},
		Current: Complex{Re: 0, Im: 0},
	}
	e := newTestExplorer(t, WithWalk(walk), WithConstant(Complex{Re: 0.5}))
	if e.Tick() {
		t.Error("Tick() advanced with auto walk off")
	}
	mustApply(t, e, Toggle(EventToggleAutoWalk))
	if !e.AutoWalk() {
		t.Fatal("AutoWalk() = false after toggling")
	}
	if !e.Tick() {
		t.Fatal("Tick() did not advance")
	}
	if got, want := e.Constant(), (Complex{Re: 0.75}); got != want {
		t.Errorf("Constant() = %v, want %v", got, want)
	}
}

func TestExplorerToggles(t *testing.T) {
	e := newTestExplorer(t)
	if !e.ShowGrid() {
		t.Fatal("grid hidden by default")
	}
	mustApply(t, e, Toggle(EventToggleGrid))
	if e.ShowGrid() {
		t.Error("EventToggleGrid did not hide the grid")
	}
	mustApply(t, e, Toggle(EventToggleDeepZoom))
	if !e.View().DeepZoom() {
		t.Error("EventToggleDeepZoom did not enable deep zoom")
	}
	if _, err := e.Apply(Event{Kind: EventKind(99)}); err == nil {
		t.Error("Apply() of an unknown event succeeded")
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventRecenter.String(); got != "recenter" {
		t.Errorf("String() = %q", got)
	}
	if got := EventKind(-1).String(); got != "EventKind(-1)" {
		t.Errorf("String() = %q", got)
	}
}
