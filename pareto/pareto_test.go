package pareto_test

import (
	"testing"

	"github.com/craftbound/craftbound/pareto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wellFormed asserts a front is strictly progress-increasing and strictly
// quality-decreasing.
func wellFormed(t *testing.T, front []pareto.Value) {
	t.Helper()
	for i := 1; i < len(front); i++ {
		assert.Less(t, front[i-1].Progress, front[i].Progress, "progress strictly increasing")
		assert.Greater(t, front[i-1].Quality, front[i].Quality, "quality strictly decreasing")
	}
}

// TestBuilder_PushEmpty verifies the "do nothing" front.
func TestBuilder_PushEmpty(t *testing.T) {
	b := pareto.NewBuilder(100, 100)
	b.PushEmpty()
	assert.Equal(t, []pareto.Value{{}}, b.Peek())
	assert.Equal(t, 1, b.Depth())
}

// TestBuilder_MergeUnion verifies the dominance-pruned union of two fronts.
func TestBuilder_MergeUnion(t *testing.T) {
	b := pareto.NewBuilder(1000, 1000)
	b.PushSlice([]pareto.Value{{Progress: 10, Quality: 90}, {Progress: 50, Quality: 40}})
	b.PushSlice([]pareto.Value{{Progress: 20, Quality: 60}, {Progress: 60, Quality: 10}})
	require.NoError(t, b.Merge())

	front := b.Peek()
	wellFormed(t, front)
	assert.Equal(t, []pareto.Value{
		{Progress: 10, Quality: 90},
		{Progress: 20, Quality: 60},
		{Progress: 50, Quality: 40},
		{Progress: 60, Quality: 10},
	}, front)
	assert.Equal(t, 1, b.Depth(), "two fronts popped, one pushed")
}

// TestBuilder_MergeDominance verifies dominated points are pruned, including
// equal-progress and equal-quality collisions.
func TestBuilder_MergeDominance(t *testing.T) {
	b := pareto.NewBuilder(1000, 1000)
	b.PushSlice([]pareto.Value{{Progress: 10, Quality: 50}, {Progress: 30, Quality: 20}})
	b.PushSlice([]pareto.Value{{Progress: 10, Quality: 80}, {Progress: 30, Quality: 20}, {Progress: 40, Quality: 5}})
	require.NoError(t, b.Merge())

	front := b.Peek()
	wellFormed(t, front)
	assert.Equal(t, []pareto.Value{
		{Progress: 10, Quality: 80},
		{Progress: 30, Quality: 20},
		{Progress: 40, Quality: 5},
	}, front)
}

// TestBuilder_MergeUnderflow verifies the sentinel on a short stack.
func TestBuilder_MergeUnderflow(t *testing.T) {
	b := pareto.NewBuilder(100, 100)
	assert.ErrorIs(t, b.Merge(), pareto.ErrMergeUnderflow)
	b.PushEmpty()
	assert.ErrorIs(t, b.Merge(), pareto.ErrMergeUnderflow)
}

// TestBuilder_ShiftTopSaturates verifies the clamp to the builder maxima and
// that a saturated shift collapses under the following merge.
func TestBuilder_ShiftTopSaturates(t *testing.T) {
	b := pareto.NewBuilder(100, 50)
	b.PushSlice([]pareto.Value{{Progress: 60, Quality: 45}, {Progress: 90, Quality: 10}})
	b.ShiftTop(30, 20)
	assert.Equal(t, []pareto.Value{{Progress: 90, Quality: 50}, {Progress: 100, Quality: 30}}, b.Peek())

	// A second shift drives both points to max progress; the merge must
	// collapse them to the single best point.
	b.ShiftTop(20, 0)
	b.PushEmpty()
	require.NoError(t, b.Merge())

	front := b.Peek()
	wellFormed(t, front)
	assert.Equal(t, []pareto.Value{{Progress: 100, Quality: 50}}, front)
}

// TestBuilder_PushSliceClamps verifies inbound values saturate.
func TestBuilder_PushSliceClamps(t *testing.T) {
	b := pareto.NewBuilder(100, 100)
	b.PushSlice([]pareto.Value{{Progress: 500, Quality: 700}})
	assert.Equal(t, []pareto.Value{{Progress: 100, Quality: 100}}, b.Peek())
}

// TestBuilder_CloneTopOwnership verifies the clone survives builder reuse.
func TestBuilder_CloneTopOwnership(t *testing.T) {
	b := pareto.NewBuilder(100, 100)
	b.PushSlice([]pareto.Value{{Progress: 10, Quality: 10}})
	clone := b.CloneTop()
	b.Clear()
	b.PushSlice([]pareto.Value{{Progress: 99, Quality: 99}})
	assert.Equal(t, []pareto.Value{{Progress: 10, Quality: 10}}, clone)

	assert.Nil(t, pareto.NewBuilder(1, 1).CloneTop(), "empty stack clones to nil")
}

// TestBuilder_RunningMerge verifies the solve-loop shape: push child, shift,
// merge, repeated — the top is always the best combined front.
func TestBuilder_RunningMerge(t *testing.T) {
	b := pareto.NewBuilder(1000, 1000)
	b.PushEmpty()

	// Option one: a progress action worth (45, 0).
	b.PushSlice([]pareto.Value{{}})
	b.ShiftTop(45, 0)
	require.NoError(t, b.Merge())

	// Option two: a touch worth (0, 30) on top of a child front.
	b.PushSlice([]pareto.Value{{Progress: 0, Quality: 40}, {Progress: 45, Quality: 0}})
	b.ShiftTop(0, 30)
	require.NoError(t, b.Merge())

	front := b.Peek()
	wellFormed(t, front)
	assert.Equal(t, []pareto.Value{
		{Progress: 0, Quality: 70},
		{Progress: 45, Quality: 30},
	}, front)
}
