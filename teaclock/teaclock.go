// Package teaclock drives an xtween.Scheduler from a Bubble Tea program.
//
// Either handle FrameMsg yourself:
//
//	func (m model) Init() tea.Cmd { return teaclock.Tick(60) }
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		if f, ok := msg.(teaclock.FrameMsg); ok {
//			teaclock.Advance(m.sched, f)
//			return m, teaclock.Tick(60)
//		}
//		...
//	}
//
// or wrap a model in [Model], which does the same around it.
package teaclock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/xtween"
)

// DefaultFPS is used when a non-positive frame rate is given.
const DefaultFPS = 60

// FrameMsg is delivered once per frame.
type FrameMsg struct {
	Time time.Time
	// Delta is the nominal frame interval in seconds.
	Delta float64
}

func interval(fps float64) time.Duration {
	if !(fps > 0) {
		fps = DefaultFPS
	}
	return time.Duration(float64(time.Second) / fps)
}

// Tick returns a command that delivers one FrameMsg after a frame interval.
func Tick(fps float64) tea.Cmd {
	d := interval(fps)
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Delta: d.Seconds()}
	})
}

// Advance steps s by the frame's nominal interval. Stepping by the nominal
// interval keeps playback deterministic when the terminal falls behind.
func Advance(s *xtween.Scheduler, msg FrameMsg) {
	s.Step(msg.Delta)
}

// Model wraps a tea.Model, stepping Scheduler on every frame before the
// wrapped model sees the FrameMsg.
type Model struct {
	tea.Model
	Scheduler *xtween.Scheduler
	FPS       float64
}

// Init starts the frame clock alongside the wrapped model's own command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Model.Init(), Tick(m.FPS))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	frame, isFrame := msg.(FrameMsg)
	if isFrame {
		Advance(m.Scheduler, frame)
	}
	inner, cmd := m.Model.Update(msg)
	m.Model = inner
	if isFrame {
		cmd = tea.Batch(cmd, Tick(m.FPS))
	}
	return m, cmd
}
