package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/phanxgames/xtween"
	"github.com/phanxgames/xtween/metrics"
	"github.com/phanxgames/xtween/scenario"
	"github.com/phanxgames/xtween/teaclock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	barWidth    = 40
	labelColour = "#818cf8"
	barColour   = "#c084fc"
	eventColour = "#fb7185"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		fps         float64
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Play a scenario live in the terminal",
		Long: `Plays a scenario in the terminal with one bar per animated value.
Keys: space pauses, r replays, b reverses, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.preview(cmd.Context(), args[0], fps, metricsAddr)
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 30, "Frames per second")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	return cmd
}

func (a *app) preview(ctx context.Context, path string, fps float64, metricsAddr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	s := xtween.NewScheduler()
	s.Logger = a.logger

	if metricsAddr != "" {
		stop, err := a.serveMetrics(s, metricsAddr)
		if err != nil {
			return err
		}
		defer stop()
	}

	m, err := newPreviewModel(sc, s, fps)
	if err != nil {
		return err
	}
	m.tween.Play()

	p := tea.NewProgram(
		teaclock.Model{Model: m, Scheduler: s, FPS: fps},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	s.RemoveAll()
	return err
}

// serveMetrics attaches a Prometheus observer to s and serves it on addr.
// The returned func shuts the server down.
func (a *app) serveMetrics(s *xtween.Scheduler, addr string) (func(), error) {
	reg := prometheus.NewRegistry()
	obs, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	obs.Attach(s)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		a.logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.logger.Warn("metrics server shutdown", "error", err)
		}
	}, nil
}

// previewModel renders the live target of a scenario tween as bars.
type previewModel struct {
	name    string
	tween   *xtween.Tween
	target  xtween.Props
	paths   []string
	lo, hi  map[string]float64
	elapsed float64
	profile termenv.Profile
}

func newPreviewModel(sc *scenario.Scenario, s *xtween.Scheduler, fps float64) (previewModel, error) {
	// Bar ranges come from a headless run of the same scenario.
	lo, hi := map[string]float64{}, map[string]float64{}
	_, err := sc.Simulate(fps, 0, func(f scenario.Frame) {
		for k, v := range f.Values {
			if cur, ok := lo[k]; !ok || v < cur {
				lo[k] = v
			}
			if cur, ok := hi[k]; !ok || v > cur {
				hi[k] = v
			}
		}
	})
	if err != nil {
		return previewModel{}, err
	}

	tw, target := sc.Build(s)
	name := sc.Name
	if name == "" {
		name = "scenario"
	}
	return previewModel{
		name:    name,
		tween:   tw,
		target:  target,
		paths:   scenario.Paths(lo),
		lo:      lo,
		hi:      hi,
		profile: termenv.ColorProfile(),
	}, nil
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case teaclock.FrameMsg:
		if m.tween.IsPlaying() {
			m.elapsed += msg.Delta
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.tween.IsPaused() {
				m.tween.Resume()
			} else {
				m.tween.Pause()
			}
		case "r":
			m.tween.Replay()
			m.elapsed = 0
		case "b":
			m.tween.Reverse()
		}
	}
	return m, nil
}

func (m previewModel) state() string {
	switch {
	case m.tween.IsPaused():
		return "paused"
	case !m.tween.IsPlaying():
		return "finished"
	case m.tween.Axis() == xtween.Inverse:
		return "reversing"
	default:
		return "playing"
	}
}

func (m previewModel) View() string {
	var b strings.Builder
	title := termenv.String(m.name).Bold().Foreground(m.profile.Color(labelColour))
	fmt.Fprintf(&b, "%s  %s  %.2fs\n\n", title, m.state(), m.elapsed)

	values := scenario.Flatten(m.target)
	width := 0
	for _, p := range m.paths {
		width = max(width, len(p))
	}
	for _, p := range m.paths {
		v := values[p]
		frac := 0.0
		if span := m.hi[p] - m.lo[p]; span > 0 {
			frac = (v - m.lo[p]) / span
		}
		bar := termenv.String(meter(frac, barWidth)).Foreground(m.profile.Color(barColour))
		fmt.Fprintf(&b, "%-*s %s %8.3f\n", width, p, bar, v)
	}

	keys := termenv.String("space pause · r replay · b reverse · q quit").Foreground(m.profile.Color(eventColour))
	fmt.Fprintf(&b, "\n%s\n", keys)
	return b.String()
}

// meter draws frac (clamped to [0, 1]) as a bar of width cells.
func meter(frac float64, width int) string {
	frac = math.Max(0, math.Min(1, frac))
	n := int(math.Round(frac * float64(width)))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
