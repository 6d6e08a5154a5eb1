// Package render is the interactive terminal viewer for a colony run.
//
// The screen is split in two panels over the same city layout: the top panel
// shows the best-ever tour and the bottom panel the shortest tour of the
// latest iteration. A one-line HUD carries the iteration count and lengths.
// Loop advances the solver by one iteration per frame.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geom"
)

// DefaultFrameInterval is one frame at 60 fps.
const DefaultFrameInterval = time.Second / 60

var (
	// ErrNilScreen is returned by NewView without a screen.
	ErrNilScreen = errors.New("render: nil screen")

	// ErrNilSolver is returned by NewView without a solver.
	ErrNilSolver = errors.New("render: nil solver")
)

const (
	edgeRune     = '·'
	cityRune     = 'o'
	dividerRune  = '─'
	minPanelRows = 2
	hudRows      = 1
	dividerRows  = 1
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBest     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCurrent  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCity     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDivider  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	defaultCanvas = geom.Point{X: geom.DefaultWidth, Y: geom.DefaultHeight}
)

// Option configures a View.
type Option func(*View)

// WithFrameInterval sets the delay between solver steps. Non-positive
// values keep the default.
func WithFrameInterval(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.interval = d
		}
	}
}

// WithCanvas sets the coordinate space the cities live in. Cities occupy
// the upper half of it, as produced by geom.DefaultBounds.
func WithCanvas(width, height int) Option {
	return func(v *View) {
		if width > 0 && height > 0 {
			v.canvas = geom.Point{X: float64(width), Y: float64(height)}
		}
	}
}

// WithIterationLimit stops the loop after n iterations. 0 means unlimited.
func WithIterationLimit(n int) Option {
	return func(v *View) {
		if n >= 0 {
			v.limit = n
		}
	}
}

// WithLogger routes viewer diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.log = l
		}
	}
}

// View draws a solver onto a tcell screen. The screen is owned by the
// caller: View never calls Init or Fini.
type View struct {
	screen   tcell.Screen
	solver   *aco.Solver
	cities   []geom.Point
	canvas   geom.Point
	interval time.Duration
	limit    int
	log      *slog.Logger
}

// NewView binds a solver to an initialized screen.
func NewView(screen tcell.Screen, solver *aco.Solver, opts ...Option) (*View, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if solver == nil {
		return nil, ErrNilSolver
	}

	v := &View{
		screen:   screen,
		solver:   solver,
		cities:   solver.Cities(),
		canvas:   defaultCanvas,
		interval: DefaultFrameInterval,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Loop runs the solver one iteration per frame and redraws after each step.
// It returns when the user presses Esc, q or Ctrl-C, when ctx is done, or
// when the iteration limit is reached. The final statistics are returned in
// every case; the error is ctx.Err() only for cancellation.
func (v *View) Loop(ctx context.Context) (aco.Stats, error) {
	var (
		events = make(chan tcell.Event, 16)
		done   = make(chan struct{})
		ticker = time.NewTicker(v.interval)
	)
	defer ticker.Stop()
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			v.log.Debug("viewer cancelled", "iterations", v.solver.Snapshot().Iteration)
			return v.solver.Stats(), ctx.Err()

		case ev := <-events:
			if !v.handleEvent(ev) {
				v.log.Debug("viewer closed by user", "iterations", v.solver.Snapshot().Iteration)
				return v.solver.Stats(), nil
			}

		case <-ticker.C:
			if v.limit > 0 && v.solver.Snapshot().Iteration >= v.limit {
				return v.solver.Stats(), nil
			}
			v.solver.Step()
			v.Draw()
		}
	}
}

// handleEvent reports whether the loop should keep running.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return !isQuitKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}

	return true
}

func isQuitKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}

	return false
}

// Draw renders the current solver state and shows it.
func (v *View) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	st := v.solver.Snapshot()

	v.drawHUD(w, st)

	panelRows := (h - hudRows - dividerRows) / 2
	if w < 2 || panelRows < minPanelRows {
		v.screen.Show()
		return
	}
	topY := hudRows
	divY := topY + panelRows
	botY := divY + dividerRows

	v.drawPanel(topY, w, panelRows, st.BestEverTour, styleBest)
	v.drawDivider(divY, w, "iteration best")
	v.drawPanel(botY, w, panelRows, st.IterationTour, styleCurrent)

	v.screen.Show()
}

func (v *View) drawHUD(w int, st aco.State) {
	text := fmt.Sprintf(" iter %d  best %s  current %s  [esc/q quit]",
		st.Iteration, formatLength(st.BestEverDistance), formatLength(st.IterationDistance))
	v.putString(0, 0, w, text, styleHUD)
}

func (v *View) drawDivider(y, w int, label string) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, dividerRune, nil, styleDivider)
	}
	v.putString(2, y, w, " "+label+" ", styleLabel)
}

// drawPanel draws tour edges first so the city markers stay visible.
func (v *View) drawPanel(top, w, rows int, tour aco.Tour, edge tcell.Style) {
	cells := make([]cell, len(v.cities))
	for i, p := range v.cities {
		cells[i] = v.project(p, top, w, rows)
	}

	n := len(tour)
	for k := 0; k < n && n == len(cells); k++ {
		for _, c := range line(cells[tour[k]], cells[tour[(k+1)%n]]) {
			v.screen.SetContent(c.x, c.y, edgeRune, nil, edge)
		}
	}
	for _, c := range cells {
		v.screen.SetContent(c.x, c.y, cityRune, nil, styleCity)
	}
}

// project maps a city from canvas space into a panel. The panel covers the
// upper half of the canvas, where generated cities live.
func (v *View) project(p geom.Point, top, w, rows int) cell {
	fx := p.X / v.canvas.X
	fy := p.Y / (v.canvas.Y / 2)

	return cell{
		x: clamp(int(fx*float64(w-1)+0.5), 0, w-1),
		y: top + clamp(int(fy*float64(rows-1)+0.5), 0, rows-1),
	}
}

func (v *View) putString(x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func formatLength(d float64) string {
	if math.IsInf(d, 0) {
		return "-"
	}

	return fmt.Sprintf("%.2f", d)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
