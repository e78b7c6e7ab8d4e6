package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSteps() []Step[string] {
	return []Step[string]{
		{Speaker: "a", Side: SideLeft, Text: "one"},
		{Speaker: "b", Side: SideRight, Text: "two"},
		{Speaker: "a", Side: SideLeft, Text: "three"},
	}
}

func TestSequencer_Monotonic(t *testing.T) {
	seq := NewSequencer(threeSteps())
	require.Equal(t, 3, seq.Len())

	first := seq.Next()
	assert.True(t, first.First)
	require.False(t, first.End())
	assert.Equal(t, "one", first.Step.Text)
	assert.Equal(t, 1, seq.Cursor())

	prev := seq.Cursor()
	for i := 0; i < 2; i++ {
		adv := seq.Next()
		assert.False(t, adv.First)
		assert.False(t, adv.End())
		assert.Greater(t, seq.Cursor(), prev)
		prev = seq.Cursor()
	}

	// The fourth advance reaches the end.
	end := seq.Next()
	assert.True(t, end.End())
	assert.Equal(t, 3, seq.Cursor())
}

func TestSequencer_EndIsIdempotent(t *testing.T) {
	seq := NewSequencer(threeSteps())
	for i := 0; i < 3; i++ {
		seq.Next()
	}
	for i := 0; i < 5; i++ {
		adv := seq.Next()
		assert.True(t, adv.End())
		assert.Equal(t, 3, seq.Cursor())
	}
}

func TestSequencer_Empty(t *testing.T) {
	seq := NewSequencer[string](nil)
	adv := seq.Next()
	assert.True(t, adv.First)
	assert.True(t, adv.End())
}
