package page

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flow-banner/flow"
)

func newTestPager(rows int) *Pager {
	p := NewPager(DefaultSections(), 60)
	p.SetRegion(0, 0, 80, rows)
	return p
}

func TestPagerScrollToJumpsWithoutAnimation(t *testing.T) {
	p := newTestPager(4)

	require.True(t, p.ScrollTo("model"))
	assert.Equal(t, 0.0, p.Offset(), "offset only moves on Update")

	p.Update(time.Now(), false)
	assert.True(t, p.Settled())
	assert.Equal(t, "model", p.Current())

	assert.False(t, p.ScrollTo("pricing"))
	assert.Equal(t, "model", p.Current())
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPagerSmoothScrollConverges(t *testing.T) {
	p := newTestPager(4)
	require.True(t, p.ScrollTo("business"))
	target := p.Target()

	prev := p.Offset()
	now := t0
	p.Update(now, true)
	assert.Greater(t, p.Offset(), prev, "first step moves toward the target")
	assert.Less(t, p.Offset(), target, "first step does not jump")

	for i := 0; i < 600 && !p.Settled(); i++ {
		now = now.Add(time.Second / 60)
		p.Update(now, true)
	}
	assert.True(t, p.Settled())
	assert.Equal(t, "business", p.Current())
}

func TestPagerEasingFollowsElapsedTime(t *testing.T) {
	step := time.Second / 60
	fast, slow := newTestPager(4), newTestPager(4)
	require.True(t, fast.ScrollTo("business"))
	require.True(t, slow.ScrollTo("business"))
	fast.Update(t0, true)
	slow.Update(t0, true)

	// Same wall time, updated at 60Hz and 20Hz
	for i := 1; i <= 12; i++ {
		fast.Update(t0.Add(time.Duration(i)*step), true)
		if i%3 == 0 {
			slow.Update(t0.Add(time.Duration(i)*step), true)
		}
	}
	assert.Equal(t, fast.Offset(), slow.Offset())
	assert.False(t, fast.Settled())

	// Calls faster than one step leave the offset alone
	at := fast.Offset()
	fast.Update(t0.Add(12*step+time.Millisecond), true)
	assert.Equal(t, at, fast.Offset())
}

func TestPagerClampsOffsets(t *testing.T) {
	p := newTestPager(200)
	require.True(t, p.ScrollTo("contact"))
	assert.Equal(t, 0.0, p.Target(), "everything fits, nothing to scroll")

	p = newTestPager(4)
	p.Bottom()
	bottom := p.Target()
	p.ScrollBy(10)
	assert.Equal(t, bottom, p.Target())

	p.Top()
	p.ScrollBy(-3)
	assert.Equal(t, 0.0, p.Target())
	p.ScrollBy(2)
	assert.Equal(t, 2.0, p.Target())
}

func TestPagerRewrapOnResize(t *testing.T) {
	p := newTestPager(4)
	wide := len(p.lines)

	p.SetRegion(0, 0, 30, 4)
	assert.Greater(t, len(p.lines), wide)
	for _, l := range p.lines {
		assert.LessOrEqual(t, len([]rune(l.text)), 26)
	}
	assert.True(t, p.ScrollTo("data"))
}

func TestPagerDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 10)

	p := NewPager(DefaultSections(), 60)
	p.SetRegion(0, 2, 80, 8)
	require.True(t, p.ScrollTo("data"))
	p.Update(time.Now(), false)
	p.Draw(screen)

	row := func(y int) string {
		var b strings.Builder
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		return b.String()
	}
	assert.Contains(t, row(2), "§ Data")
	assert.Contains(t, row(3), "Data")
	assert.Contains(t, row(4), "We evaluate by business value.")
}

func TestPagerEmptyRegion(t *testing.T) {
	p := NewPager(DefaultSections(), 0)
	p.SetRegion(0, 0, 0, 0)
	assert.False(t, p.ScrollTo("about"))
	assert.Equal(t, "", p.Current())
	p.Update(time.Now(), true)
}

func TestWithStages(t *testing.T) {
	stages := append(flow.DefaultStages(), flow.StageDef{ID: "deploy", Label: "Deploy", Color: "#22c55e", Description: "Ship it."})

	got := WithStages(DefaultSections(), stages)
	require.Len(t, got, 7)
	assert.Equal(t, "deploy", got[5].ID)
	assert.Equal(t, []string{"Ship it."}, got[5].Body)
	assert.Equal(t, "contact", got[6].ID)

	same := WithStages(DefaultSections(), flow.DefaultStages())
	assert.Len(t, same, 6)
}
