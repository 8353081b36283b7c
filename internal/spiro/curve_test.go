package spiro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(R, r int, l float64) Params {
	return Params{Outer: R, Inner: r, L: l, Color: Color{R: 0.2, G: 0.4, B: 0.6}}
}

func TestNewCurveRestarts(t *testing.T) {
	pen := &recorder{}
	c, err := NewCurve(pen, testParams(100, 25, 0.5), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"color 0.20 0.40 0.60", "show", "up", "move", "down"}, pen.ops)
	require.Len(t, pen.moves, 1)
	assert.InDelta(t, 87.5, pen.moves[0].x, 1e-9)
	assert.InDelta(t, 0, pen.moves[0].y, 1e-9)
	assert.True(t, pen.down)
	assert.True(t, pen.visible)
	assert.Equal(t, 0, c.Angle())
	assert.False(t, c.Complete())
	assert.Equal(t, 1, c.Rotations())
	assert.InDelta(t, 0.25, c.Ratio(), 1e-12)
}

func TestNewCurveOrigin(t *testing.T) {
	pen := &recorder{}
	p := testParams(100, 25, 0.5)
	p.Xc, p.Yc = -30, 12
	_, err := NewCurve(pen, p, 5)
	require.NoError(t, err)
	assert.InDelta(t, 57.5, pen.moves[0].x, 1e-9)
	assert.InDelta(t, 12, pen.moves[0].y, 1e-9)
}

func TestNewCurveInvalid(t *testing.T) {
	tests := []struct {
		name  string
		R, r  int
		step  int
		field string
	}{
		{"zero R", 0, 10, 5, "R"},
		{"negative R", -5, 10, 5, "R"},
		{"zero r", 100, 0, 5, "r"},
		{"negative r", 100, -1, 5, "r"},
		{"zero step", 100, 20, 0, "step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pen := &recorder{}
			c, err := NewCurve(pen, testParams(tt.R, tt.r, 0.5), tt.step)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
			var pe *ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
			assert.Empty(t, pen.ops, "no drawing before validation")
		})
	}
}

func TestSetParamsRejectsWithoutSideEffects(t *testing.T) {
	pen := &recorder{}
	c, err := NewCurve(pen, testParams(100, 25, 0.5), 5)
	require.NoError(t, err)
	c.Advance()
	pen.reset()

	err = c.SetParams(testParams(100, 0, 0.5))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Empty(t, pen.ops)
	assert.Equal(t, 25, c.Params().Inner)
	assert.Equal(t, 5, c.Angle())
}

func TestSetParamsKeepsAngle(t *testing.T) {
	pen := &recorder{}
	c, err := NewCurve(pen, testParams(100, 25, 0.5), 5)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	require.NoError(t, c.SetParams(testParams(100, 30, 0.3)))
	assert.Equal(t, 50, c.Angle())
	assert.Equal(t, 3, c.Rotations())
	assert.Equal(t, 1080, c.Target())
}

func TestAdvanceCompletesExactly(t *testing.T) {
	tests := []struct {
		R, r, step int
	}{
		{100, 25, 5},
		{100, 30, 5},
		{100, 30, 1},
		{100, 40, 9},
		{97, 13, 3},
		// steps that do not divide the target
		{100, 25, 7},
		{100, 30, 11},
		{150, 70, 13},
	}
	for _, tt := range tests {
		pen := &recorder{}
		c, err := NewCurve(pen, testParams(tt.R, tt.r, 0.5), tt.step)
		require.NoError(t, err)

		target := 360 * Rotations(tt.R, tt.r)
		need := (target + tt.step - 1) / tt.step
		for i := 1; i < need; i++ {
			require.False(t, c.Advance(), "R=%d r=%d step=%d completed early at %d", tt.R, tt.r, tt.step, i)
		}
		assert.True(t, c.Advance(), "R=%d r=%d step=%d", tt.R, tt.r, tt.step)
		assert.True(t, c.Complete())
		assert.False(t, pen.visible, "cursor hidden on completion")
		assert.Len(t, pen.lines, need)
	}
}

func TestAdvanceAfterCompleteIsNoop(t *testing.T) {
	pen := &recorder{}
	c, err := NewCurve(pen, testParams(100, 25, 0.5), 90)
	require.NoError(t, err)
	for !c.Advance() {
	}
	pen.reset()
	angle := c.Angle()

	assert.True(t, c.Advance())
	assert.Empty(t, pen.ops)
	assert.Equal(t, angle, c.Angle())
}

func TestRestartIsIdempotent(t *testing.T) {
	p := testParams(100, 30, 0.7)
	p.Xc, p.Yc = 15, -40

	fresh := &recorder{}
	_, err := NewCurve(fresh, p, 5)
	require.NoError(t, err)

	pen := &recorder{}
	c, err := NewCurve(pen, p, 5)
	require.NoError(t, err)
	for !c.Advance() {
	}
	pen.reset()

	c.Restart()
	assert.False(t, c.Complete())
	assert.Equal(t, 0, c.Angle())
	assert.True(t, pen.visible)
	assert.Equal(t, []string{"show", "up", "move", "down"}, pen.ops)
	assert.Equal(t, fresh.moves, pen.moves)
}

func TestDrawFullMatchesAdvance(t *testing.T) {
	for _, step := range []int{5, 7} {
		p := testParams(120, 45, 0.4)

		bulk := &recorder{}
		b, err := NewCurve(bulk, p, step)
		require.NoError(t, err)
		bulk.reset()
		b.DrawFull()

		inc := &recorder{}
		c, err := NewCurve(inc, p, step)
		require.NoError(t, err)
		for !c.Advance() {
		}

		assert.Equal(t, inc.lines, bulk.lines, "step %d", step)
		assert.Equal(t, "hide", bulk.ops[len(bulk.ops)-1])
		assert.False(t, b.Complete(), "bulk drawing leaves incremental state alone")
		assert.Equal(t, 0, b.Angle())
	}
}

func TestToggleCursor(t *testing.T) {
	pen := &recorder{}
	c, err := NewCurve(pen, testParams(100, 25, 0.5), 5)
	require.NoError(t, err)
	require.True(t, pen.visible)

	c.ToggleCursor()
	assert.False(t, pen.visible)
	c.ToggleCursor()
	assert.True(t, pen.visible)
	assert.Equal(t, 0, c.Angle())
}
