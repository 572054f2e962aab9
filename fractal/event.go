package fractal

import "fmt"

// EventKind selects which fields of an Event are meaningful.
type EventKind int

const (
	// EventZoomIn and EventZoomOut change the scale by one step.
	EventZoomIn EventKind = iota
	EventZoomOut
	// EventRecenter moves the grid centre under pixel (X, Y).
	EventRecenter
	// EventConstantDelta adds (DX, DY) to the Julia constant.
	EventConstantDelta
	EventToggleAutoWalk
	EventToggleDeepZoom
	EventToggleGrid
	// EventResize reports a new screen size (Width, Height).
	EventResize
)

var eventNames = [...]string{
	EventZoomIn:         "zoom-in",
	EventZoomOut:        "zoom-out",
	EventRecenter:       "recenter",
	EventConstantDelta:  "constant-delta",
	EventToggleAutoWalk: "toggle-auto-walk",
	EventToggleDeepZoom: "toggle-deep-zoom",
	EventToggleGrid:     "toggle-grid",
	EventResize:         "resize",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is an input expressed as plain values, independent of any
// windowing library.
type Event struct {
	Kind          EventKind
	X, Y          float64
	DX, DY        float64
	Width, Height int
}

// ZoomIn returns an EventZoomIn.
func ZoomIn() Event { return Event{Kind: EventZoomIn} }

// ZoomOut returns an EventZoomOut.
func ZoomOut() Event { return Event{Kind: EventZoomOut} }

// Recenter returns an EventRecenter at pixel (x, y).
func Recenter(x, y float64) Event { return Event{Kind: EventRecenter, X: x, Y: y} }

// ConstantDelta returns an EventConstantDelta.
func ConstantDelta(dx, dy float64) Event { return Event{Kind: EventConstantDelta, DX: dx, DY: dy} }

// Resize returns an EventResize.
func Resize(width, height int) Event { return Event{Kind: EventResize, Width: width, Height: height} }

// Toggle returns an event of a toggle kind.
func Toggle(kind EventKind) Event { return Event{Kind: kind} }
