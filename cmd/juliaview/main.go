// Command juliaview is an interactive Julia set explorer.
//
// Keys: Up/Down or the mouse wheel zoom, a left click recentres, D toggles
// deep zoom, A toggles the automatic constant walk, G toggles the grid,
// Q/E and W/S nudge the real and imaginary part of the constant, Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	fluffy "github.com/willyclarke/fluffy-palm-tree"
	"github.com/willyclarke/fluffy-palm-tree/fractal"
)

func main() {
	var (
		width   = flag.Int("width", 1280, "window width")
		height  = flag.Int("height", 768, "window height")
		threads = flag.Int("threads", 0, "render bands (0 = GOMAXPROCS)")
		maxIter = flag.Int("maxiter", fractal.DefaultMaxIterations, "escape-time iteration cap")
		cr      = flag.Float64("cr", fractal.DefaultConstant.Re, "real part of the Julia constant")
		ci      = flag.Float64("ci", fractal.DefaultConstant.Im, "imaginary part of the Julia constant")
		deep    = flag.Bool("deep", false, "start in deep-zoom mode")
		verbose = flag.Bool("v", false, "debug logging to stderr")
		dialogs = flag.Bool("dialogs", true, "show fatal errors in a native dialog")
	)
	flag.Parse()

	if *verbose {
		fluffy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := fluffy.DefaultViewConfig()
	cfg.ScreenWidth = *width
	cfg.ScreenHeight = *height

	ex, err := fractal.NewExplorer(cfg,
		fractal.WithConstant(fractal.Complex{Re: *cr, Im: *ci}),
		fractal.WithRenderOptions(fractal.WithMaxIterations(*maxIter)),
		fractal.WithCanvasOptions(fractal.WithThreads(*threads)),
	)
	if err != nil {
		fatal(*dialogs, "Failed to set up view: %v", err)
	}
	defer ex.Close()
	if *deep {
		if _, err := ex.Apply(fractal.Toggle(fractal.EventToggleDeepZoom)); err != nil {
			fatal(*dialogs, "Failed to enable deep zoom: %v", err)
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("juliaview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(ex)); err != nil {
		ex.Close()
		fatal(*dialogs, "juliaview: %v", err)
	}
}

// fatal reports a setup or render failure and exits.
func fatal(dialog bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if dialog {
		_ = zenity.Error(msg, zenity.Title("juliaview"), zenity.ErrorIcon)
	}
	log.Fatal(msg)
}
