package fractal

import (
	"errors"
	"runtime"
	"testing"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
)

func TestConfigureCanvas(t *testing.T) {
	c, err := ConfigureCanvas(250, 250, 500, 500, 100, 100)
	if err != nil {
		t.Fatalf("ConfigureCanvas() error = %v", err)
	}

	corners := []struct {
		name string
		got  fluffy.Vec4
		want fluffy.Vec4
	}{
		{"UL", c.PosUL, fluffy.Point(0, 0, 0)},
		{"UR", c.PosUR, fluffy.Point(500, 0, 0)},
		{"LL", c.PosLL, fluffy.Point(0, 500, 0)},
		{"LR", c.PosLR, fluffy.Point(500, 500, 0)},
	}
	for _, cc := range corners {
		if cc.got != cc.want {
			t.Errorf("%s = %v, want %v", cc.name, cc.got, cc.want)
		}
	}

	m := c.ScreenToPixel
	if m.M[0][0] != 100 || m.M[1][1] != -100 {
		t.Errorf("ScreenToPixel diagonal = %v, want (100, -100, 0)", m.Diagonal())
	}
	if m.IsInvertible() {
		t.Error("ScreenToPixel.IsInvertible() = true, want false")
	}
	if got, want := m.Apply(fluffy.Point(0, 0, 0)), fluffy.Point(250, 250, 0); got != want {
		t.Errorf("ScreenToPixel applied to origin = %v, want %v", got, want)
	}

	if want := max(runtime.GOMAXPROCS(0), 1); c.NThreads != want {
		t.Errorf("NThreads = %d, want %d", c.NThreads, want)
	}
	if got, want := c.YIncrement, 500/float64(c.NThreads); got != want {
		t.Errorf("YIncrement = %v, want %v", got, want)
	}
}

func TestConfigureCanvasOddSize(t *testing.T) {
	c, err := ConfigureCanvas(10, 10, 5, 3, 1, 1)
	if err != nil {
		t.Fatalf("ConfigureCanvas() error = %v", err)
	}
	if got, want := c.PosUL, fluffy.Point(8, 9, 0); got != want {
		t.Errorf("UL = %v, want %v", got, want)
	}
	if got, want := c.PosLR, fluffy.Point(13, 12, 0); got != want {
		t.Errorf("LR = %v, want %v", got, want)
	}
	if c.Width() != 5 || c.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", c.Width(), c.Height())
	}
}

func TestConfigureCanvasThreads(t *testing.T) {
	c, err := ConfigureCanvas(0, 0, 64, 10, 1, 1, WithThreads(4))
	if err != nil {
		t.Fatalf("ConfigureCanvas() error = %v", err)
	}
	if c.NThreads != 4 || c.YIncrement != 2.5 {
		t.Errorf("NThreads=%d YIncrement=%v, want 4 and 2.5", c.NThreads, c.YIncrement)
	}
	bands := c.Bands()
	if len(bands) != 4 || bands[3].End != 10 {
		t.Errorf("Bands() = %v", bands)
	}

	c, _ = ConfigureCanvas(0, 0, 64, 10, 1, 1, WithThreads(0))
	if c.NThreads < 1 {
		t.Errorf("WithThreads(0) gave NThreads=%d", c.NThreads)
	}
}

func TestConfigureCanvasInvalid(t *testing.T) {
	tests := []struct{ w, h int }{{0, 10}, {10, 0}, {-4, 10}, {10, -1}}
	for _, tt := range tests {
		_, err := ConfigureCanvas(0, 0, tt.w, tt.h, 100, 100)
		if !errors.Is(err, ErrInvalidCanvasDimensions) {
			t.Errorf("ConfigureCanvas(w=%d, h=%d) error = %v, want ErrInvalidCanvasDimensions", tt.w, tt.h, err)
		}
	}
	if (PixelCanvas{}).Valid() {
		t.Error("zero PixelCanvas reported valid")
	}
}
