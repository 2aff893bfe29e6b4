package teaclock

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/xtween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	frames int
	keys   int
}

func (r recorder) Init() tea.Cmd { return nil }

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case FrameMsg:
		r.frames++
	case tea.KeyMsg:
		r.keys++
	}
	return r, nil
}

func (r recorder) View() string { return "" }

func TestTickDeliversFrame(t *testing.T) {
	cmd := Tick(200)
	require.NotNil(t, cmd)

	msg := cmd()

	frame, ok := msg.(FrameMsg)
	require.True(t, ok, "got %T", msg)
	assert.InDelta(t, 0.005, frame.Delta, 1e-12)
	assert.False(t, frame.Time.IsZero())
}

func TestIntervalDefaults(t *testing.T) {
	assert.Equal(t, time.Second/DefaultFPS, interval(0))
	assert.Equal(t, time.Second/DefaultFPS, interval(-5))
	assert.Equal(t, 100*time.Millisecond, interval(10))
}

func TestAdvanceStepsScheduler(t *testing.T) {
	s := xtween.NewScheduler()
	target := &struct{ X float64 }{}
	s.New(target).To(1, xtween.Props{"X": 10}).Play()

	Advance(s, FrameMsg{Delta: 0.25})
	Advance(s, FrameMsg{Delta: 0.25})

	assert.InDelta(t, 5, target.X, 1e-9)
}

func TestModelStepsBeforeInner(t *testing.T) {
	s := xtween.NewScheduler()
	target := &struct{ X float64 }{}
	s.New(target).To(1, xtween.Props{"X": 10}).Play()

	var m tea.Model = Model{Model: recorder{}, Scheduler: s, FPS: 30}
	assert.NotNil(t, m.(Model).Init())

	m, cmd := m.Update(FrameMsg{Delta: 0.5})
	assert.NotNil(t, cmd, "a frame schedules the next one")
	assert.InDelta(t, 5, target.X, 1e-9)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	inner := m.(Model).Model.(recorder)
	assert.Equal(t, 1, inner.frames)
	assert.Equal(t, 1, inner.keys)
}
