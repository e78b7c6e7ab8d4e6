package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestRunner_PrunesFinished(t *testing.T) {
	r := NewRunner()
	x := 0.0
	h := r.Play(To(&x, 1, 0.1, ease.Linear))

	assert.Equal(t, 1, r.Len())
	assert.True(t, h.Active())

	r.Update(0.2)
	assert.Equal(t, 0, r.Len())
	assert.False(t, h.Active())
	assert.Equal(t, 1.0, x)
}

func TestRunner_CancelStopsCallbacks(t *testing.T) {
	r := NewRunner()
	fired := false
	h := r.Play(Seq(Delay(0.5), Call(func() { fired = true })))

	r.Update(0.1)
	h.Cancel()
	r.Update(1.0)
	r.Update(1.0)

	assert.False(t, fired)
	assert.Equal(t, 0, r.Len())
}

func TestRunner_CancelAll(t *testing.T) {
	r := NewRunner()
	count := 0
	var handles []*Handle
	for i := 0; i < 3; i++ {
		handles = append(handles, r.Play(Seq(Delay(0.1), Call(func() { count++ }))))
	}

	r.CancelAll()
	r.Update(1.0)

	assert.Equal(t, 0, count)
	for _, h := range handles {
		assert.False(t, h.Active())
	}
}

func TestRunner_CancelAllFromCallback(t *testing.T) {
	r := NewRunner()
	later := false
	r.Play(Call(func() { r.CancelAll() }))
	r.Play(Call(func() { later = true }))

	assert.NotPanics(t, func() { r.Update(0.016) })
	assert.False(t, later, "animations after a teardown callback do not run")
	assert.Equal(t, 0, r.Len())
}

func TestRunner_PlayFromCallback(t *testing.T) {
	r := NewRunner()
	second := false
	r.Play(Call(func() {
		r.Play(Call(func() { second = true }))
	}))

	r.Update(0.016)
	assert.False(t, second, "new animation starts on the next update")
	r.Update(0.016)
	assert.True(t, second)
}

func TestHandle_NilSafe(t *testing.T) {
	var h *Handle
	h.Cancel()
	assert.False(t, h.Active())
}
