package ebitenloop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/xtween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGame struct {
	updates int
	draws   int
	seenX   float64
	probe   *struct{ X float64 }
	err     error
}

func (g *stubGame) Update() error {
	g.updates++
	g.seenX = g.probe.X
	return g.err
}

func (g *stubGame) Draw(*ebiten.Image) { g.draws++ }

func (g *stubGame) Layout(int, int) (int, int) { return 320, 240 }

func TestTickDeltaUsesTPS(t *testing.T) {
	assert.InDelta(t, 1.0/float64(ebiten.TPS()), TickDelta(), 1e-12)
}

func TestGameStepsBeforeUpdate(t *testing.T) {
	s := xtween.NewScheduler()
	probe := &struct{ X float64 }{}
	s.New(probe).To(TickDelta()*3.5, xtween.Props{"X": 3.5}).Play()

	inner := &stubGame{probe: probe}
	g := New(s, inner)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, inner.updates)
	assert.InDelta(t, 1, inner.seenX, 1e-9, "inner game sees the stepped value")

	for range 3 {
		require.NoError(t, g.Update())
	}
	assert.InDelta(t, 3.5, probe.X, 1e-9)
	assert.Equal(t, 0, s.Len())
}

func TestGamePropagatesError(t *testing.T) {
	stop := errors.New("stop")
	inner := &stubGame{probe: &struct{ X float64 }{}, err: stop}
	g := New(xtween.NewScheduler(), inner)

	assert.ErrorIs(t, g.Update(), stop)
}

func TestGameDelegatesLayoutAndDraw(t *testing.T) {
	inner := &stubGame{probe: &struct{ X float64 }{}}
	g := New(xtween.NewScheduler(), inner)

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	g.Draw(nil)
	assert.Equal(t, 1, inner.draws)
}
