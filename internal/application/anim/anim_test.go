package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTween_ReachesTarget(t *testing.T) {
	x := 0.0
	tw := To(&x, 100, 1.0, ease.Linear)

	assert.False(t, tw.Update(0.5))
	assert.InDelta(t, 50, x, 0.5)

	assert.True(t, tw.Update(0.6))
	assert.Equal(t, 100.0, x, "finished tween snaps to target")
}

func TestTween_StartCapturedLazily(t *testing.T) {
	x := 0.0
	tw := To(&x, 10, 1.0, ease.Linear)
	x = 5 // moved before the tween starts

	tw.Update(0.5)
	assert.InDelta(t, 7.5, x, 0.1)
}

func TestTween_From(t *testing.T) {
	x := 42.0
	tw := To(&x, 1, 1.0, ease.Linear).From(0)
	tw.Update(0.5)
	assert.InDelta(t, 0.5, x, 0.01)
}

func TestTween_ZeroDuration(t *testing.T) {
	x := 3.0
	assert.True(t, To(&x, 9, 0, nil).Update(0.016))
	assert.Equal(t, 9.0, x)
}

func TestSequence_RunsInOrder(t *testing.T) {
	var order []string
	seq := Seq(
		Call(func() { order = append(order, "a") }),
		Delay(0.1),
		Call(func() { order = append(order, "b") }),
	)

	assert.False(t, seq.Update(0.05))
	assert.Equal(t, []string{"a"}, order)
	assert.False(t, seq.Update(0.06))
	assert.False(t, seq.Update(0.05), "wait finishes, call runs next frame")
	assert.Equal(t, []string{"a"}, order)
	assert.True(t, seq.Update(0.01))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.True(t, seq.Update(0.01), "finished sequence stays finished")
}

func TestParallel_WaitsForAll(t *testing.T) {
	x, y := 0.0, 0.0
	par := Par(To(&x, 1, 0.1, ease.Linear), To(&y, 1, 0.3, ease.Linear))

	assert.False(t, par.Update(0.15))
	assert.Equal(t, 1.0, x)
	assert.False(t, par.Update(0.1))
	assert.True(t, par.Update(0.1))
	assert.Equal(t, 1.0, y)
}
