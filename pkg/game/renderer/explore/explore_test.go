package explore

import (
	"bytes"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "cavegen/pkg/engine/input"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/placement"
	"cavegen/pkg/game/renderer"
)

func newExplorer(t *testing.T) *Explorer {
	t.Helper()
	cfg := generator.DefaultConfig()
	cfg.Width = 60
	cfg.Height = 40
	s, err := renderer.NewSession(generator.CellularAutomaton, cfg, "")
	require.NoError(t, err)
	e := New(nil, s)
	e.resize(20, 12)
	return e
}

func TestKeyCode(t *testing.T) {
	assert.Equal(t, "arrow_up", keyCode(tcell.KeyUp, 0))
	assert.Equal(t, "escape", keyCode(tcell.KeyEscape, 0))
	assert.Equal(t, "R", keyCode(tcell.KeyRune, 'R'))
	assert.Equal(t, "", keyCode(tcell.KeyF1, 0))
}

func TestPanClampsToMap(t *testing.T) {
	e := newExplorer(t)

	e.Apply(engineinput.ActionPanWest)
	x, y := e.Offset()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	for i := 0; i < 50; i++ {
		e.Apply(engineinput.ActionPanEast)
		e.Apply(engineinput.ActionPanSouth)
	}
	x, y = e.Offset()
	assert.Equal(t, 60-20, x)
	assert.Equal(t, 40-(12-statusLines), y)
}

func TestApplyReseedsMap(t *testing.T) {
	e := newExplorer(t)
	before := e.session.Config().MapSeed

	quit := e.Apply(engineinput.ActionNextMapSeed)
	assert.False(t, quit)
	assert.Equal(t, before+1, e.session.Config().MapSeed)
	assert.Len(t, e.surface, 40)
	assert.Len(t, e.cmds, len(placement.Commands(e.session.Result)))

	assert.True(t, e.Apply(engineinput.ActionQuit))
}

func TestResizeSmallerThanMapKeepsOffsetValid(t *testing.T) {
	e := newExplorer(t)
	e.pan(100, 100)
	e.resize(200, 100)
	x, y := e.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestCellStyleRunes(t *testing.T) {
	r, _ := cellStyle(placement.KindEntry)
	assert.Equal(t, '@', r)
	r, _ = cellStyle(placement.KindWall)
	assert.Equal(t, ' ', r)
}

func TestApplyLogsSessionErrors(t *testing.T) {
	e := newExplorer(t)
	e.session.DumpPath = t.TempDir()

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	assert.False(t, e.Apply(engineinput.ActionDump))
	assert.Contains(t, buf.String(), "explore:")
}
