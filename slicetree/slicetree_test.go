package slicetree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlslice/slicetree"
	"github.com/katalvlaran/lvlslice/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseComparer lets go-cmp diff nested structures that embed tensors.
var denseComparer = cmp.Comparer(func(a, b *tensor.Dense) bool {
	return tensor.AllClose(a, b, 0)
})

// sampleData mirrors a telemetry snapshot: every sliceable leaf has one
// axis of length 5, scalars and short arrays ride along.
func sampleData(t *testing.T) map[string]any {
	t.Helper()
	b, err := tensor.FromRows([][]float64{
		{10, 20}, {30, 40}, {50, 60}, {70, 80}, {90, 100},
	}) // shape (5,2)
	require.NoError(t, err)
	x, err := tensor.New([]int{1, 5}, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	deep, err := tensor.New([]int{1, 1, 5}, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	return map[string]any{
		"a":                     []float64{1, 2, 3, 4, 5},
		"b":                     b,
		"nested":                map[string]any{"x": x},
		"scalar":                42,
		"treat_as_scalar":       []float64{1},
		"treat_as_scalar_empty": []float64{},
		"array": []any{
			[]float64{100, 200, 300, 400, 500},
			deep,
		},
	}
}

// mustDense builds a tensor inline for expectations.
func mustDense(t *testing.T, shape []int, data []float64) *tensor.Dense {
	t.Helper()
	d, err := tensor.New(shape, data)
	require.NoError(t, err)

	return d
}

// TestSlice_Basic is the canonical traversal: one range selector, one hint,
// every leaf sliced along its length-5 axis, everything else untouched.
func TestSlice_Basic(t *testing.T) {
	out, err := slicetree.Slice(sampleData(t), slicetree.NewRange(1, 4), 5)
	require.NoError(t, err)
	got := out.(map[string]any)

	assert.Equal(t, []float64{2, 3, 4}, got["a"])
	assert.True(t, tensor.AllClose(got["b"].(*tensor.Dense),
		mustDense(t, []int{3, 2}, []float64{30, 40, 50, 60, 70, 80}), 0),
		"rows 1..3 of the (5,2) leaf")
	assert.True(t, tensor.AllClose(got["nested"].(map[string]any)["x"].(*tensor.Dense),
		mustDense(t, []int{1, 3}, []float64{2, 3, 4}), 0))
	assert.Equal(t, 42, got["scalar"])
	assert.Equal(t, []float64{1}, got["treat_as_scalar"], "length-1 leaf passes through")
	assert.Equal(t, []float64{}, got["treat_as_scalar_empty"], "empty leaf passes through")

	arr := got["array"].([]any)
	assert.Equal(t, []float64{200, 300, 400}, arr[0])
	assert.True(t, tensor.AllClose(arr[1].(*tensor.Dense),
		mustDense(t, []int{1, 1, 3}, []float64{2, 3, 4}), 0))
}

// TestSlice_WorkedExampleFlat is the flat worked example: JSON-ish input,
// range(1,4), hint 5.
func TestSlice_WorkedExampleFlat(t *testing.T) {
	in := map[string]any{"a": []any{1, 2, 3, 4, 5}, "scalar": 42}

	out, err := slicetree.Slice(in, slicetree.NewRange(1, 4), 5)
	require.NoError(t, err)

	want := map[string]any{"a": []any{2, 3, 4}, "scalar": 42}
	assert.Empty(t, cmp.Diff(want, out))
}

// TestSlice_WorkedExample2D slices the length-5 axis of a (2,5) leaf under
// "b" and leaves the length-2 axis untouched.
func TestSlice_WorkedExample2D(t *testing.T) {
	in := map[string]any{"b": mustDense(t, []int{2, 5}, []float64{
		1, 2, 3, 4, 5,
		6, 7, 8, 9, 10,
	})}

	out, err := slicetree.Slice(in, slicetree.NewRange(1, 4), 5)
	require.NoError(t, err)

	got := out.(map[string]any)["b"].(*tensor.Dense)
	assert.Equal(t, []int{2, 3}, got.Shape())
	assert.True(t, tensor.AllClose(got,
		mustDense(t, []int{2, 3}, []float64{2, 3, 4, 7, 8, 9}), 0))
}

// TestSlice_IdentityPreservesShape: the full-range selector returns a
// structure deep-equal to the input.
func TestSlice_IdentityPreservesShape(t *testing.T) {
	in := sampleData(t)

	out, err := slicetree.Slice(in, slicetree.FullRange(), 5)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(in, out, denseComparer))
}

// TestSlice_ReverseRoundTrip: reversing twice restores the original order
// of every sliceable leaf.
func TestSlice_ReverseRoundTrip(t *testing.T) {
	in := sampleData(t)

	once, err := slicetree.Slice(in, slicetree.Reversed(), 5)
	require.NoError(t, err)
	twice, err := slicetree.Slice(once, slicetree.Reversed(), 5)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(in, twice, denseComparer))
}

// TestSlice_IndicesAndMaskAgree: an index list and the boolean mask
// covering the same positions select the same elements.
func TestSlice_IndicesAndMaskAgree(t *testing.T) {
	in := sampleData(t)

	byIdx, err := slicetree.Slice(in, slicetree.Indices{0, 2, 3, 4}, 5)
	require.NoError(t, err)
	byMask, err := slicetree.Slice(in, slicetree.Mask{true, false, true, true, true}, 5)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(byIdx, byMask, denseComparer))
}

// TestSlice_NegativeAndDuplicateIndices exercises fancy indexing on leaves.
func TestSlice_NegativeAndDuplicateIndices(t *testing.T) {
	in := map[string]any{"a": []float64{1, 2, 3, 4, 5}}

	out, err := slicetree.Slice(in, slicetree.Indices{0, 3, 2, -1, -1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 3, 5, 5}, out.(map[string]any)["a"])
}

// TestSlice_AxisNotFound: a leaf with no hint-length axis fails, carrying
// its path.
func TestSlice_AxisNotFound(t *testing.T) {
	arr := mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4})

	_, err := slicetree.Slice(map[string]any{"bad": arr}, slicetree.NewRange(0, 1), 5)
	require.ErrorIs(t, err, slicetree.ErrAxisNotFound)
	assert.Contains(t, err.Error(), "/bad", "error must carry the offending path")
	assert.Contains(t, err.Error(), "[2 2]", "error must carry the leaf shape")
}

// TestSlice_AxisAmbiguous: several hint-length axes must fail, never pick
// the first match.
func TestSlice_AxisAmbiguous(t *testing.T) {
	arr := mustDense(t, []int{2, 2}, []float64{1, 2, 3, 4})

	_, err := slicetree.Slice(arr, slicetree.NewRange(0, 1), 2)
	require.ErrorIs(t, err, slicetree.ErrAxisAmbiguous)
	assert.Contains(t, err.Error(), "[0 1]", "error must list the candidate axes")
}

// TestSlice_MaskLengthPerLeaf: a mask is validated against each leaf's own
// axis length.
func TestSlice_MaskLengthPerLeaf(t *testing.T) {
	in := map[string]any{"a": []float64{1, 2, 3, 4, 5}}

	_, err := slicetree.Slice(in, slicetree.Mask{true, false}, 5)
	require.ErrorIs(t, err, slicetree.ErrMaskLength)
	assert.Contains(t, err.Error(), "/a")
}

// TestSlice_RejectsPlainIndexing: a bare integer key is ErrInvalidSelector,
// clearly distinct from ErrAxisNotFound.
func TestSlice_RejectsPlainIndexing(t *testing.T) {
	_, err := slicetree.SliceKey(map[string]any{"a": []float64{1}}, 2, 5)
	require.ErrorIs(t, err, slicetree.ErrInvalidSelector)
	assert.NotErrorIs(t, err, slicetree.ErrAxisNotFound)

	_, err = slicetree.Slice(nil, nil, 5)
	assert.ErrorIs(t, err, slicetree.ErrInvalidSelector, "nil selector must be rejected up front")
}

// TestSlice_BadHint rejects negative hints before traversal.
func TestSlice_BadHint(t *testing.T) {
	_, err := slicetree.Slice(map[string]any{}, slicetree.FullRange(), -1)
	assert.ErrorIs(t, err, slicetree.ErrBadHint)
}

// TestSlice_UnsupportedNode fails loudly on unclassifiable values instead
// of passing them through as scalars.
func TestSlice_UnsupportedNode(t *testing.T) {
	in := map[string]any{"weird": make(chan int)}

	_, err := slicetree.Slice(in, slicetree.FullRange(), 5)
	require.ErrorIs(t, err, slicetree.ErrUnsupportedNode)
	assert.Contains(t, err.Error(), "/weird")
}

// TestSlice_StrictLeaves turns the scalar-like exception off: a length-1
// leaf then fails like any other unmatched leaf.
func TestSlice_StrictLeaves(t *testing.T) {
	in := map[string]any{"one": []float64{1}}

	_, err := slicetree.Slice(in, slicetree.FullRange(), 5, slicetree.WithStrictLeaves())
	assert.ErrorIs(t, err, slicetree.ErrAxisNotFound)
}

// TestSlice_DepthBound: nesting deeper than the configured bound is
// ErrDepthExceeded, not a stack overflow.
func TestSlice_DepthBound(t *testing.T) {
	v := any([]float64{1, 2, 3, 4, 5})
	for i := 0; i < 10; i++ {
		v = map[string]any{"deeper": v}
	}

	_, err := slicetree.Slice(v, slicetree.FullRange(), 5, slicetree.WithMaxDepth(4))
	require.ErrorIs(t, err, slicetree.ErrDepthExceeded)

	out, err := slicetree.Slice(v, slicetree.FullRange(), 5, slicetree.WithMaxDepth(16))
	require.NoError(t, err)
	assert.NotNil(t, out)
}

// TestSlice_TypedContainers covers the reflection paths: typed maps, typed
// sequences and fixed-size array leaves.
func TestSlice_TypedContainers(t *testing.T) {
	byKey := map[string][]float64{
		"u": {1, 2, 3, 4, 5},
		"v": {10, 20, 30, 40, 50},
	}
	out, err := slicetree.Slice(byKey, slicetree.NewRange(0, 2), 5)
	require.NoError(t, err)
	assert.Equal(t, map[string][]float64{"u": {1, 2}, "v": {10, 20}}, out)

	rows := [][]float64{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}}
	out, err = slicetree.Slice(rows, slicetree.Indices{4, 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5, 1}, {10, 6}}, out)

	fixed := [5]int{1, 2, 3, 4, 5}
	out, err = slicetree.Slice(fixed, slicetree.NewRange(1, 3), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out, "fixed-size array leaves come back as slices")
}

// TestSlice_ZeroDimensionalTensor passes through as a scalar.
func TestSlice_ZeroDimensionalTensor(t *testing.T) {
	s := tensor.Scalar(7)

	out, err := slicetree.Slice(map[string]any{"s": s}, slicetree.FullRange(), 5)
	require.NoError(t, err)
	assert.Same(t, s, out.(map[string]any)["s"], "0-d tensors are opaque scalars")
}

// TestSlice_DoesNotMutateInput: the engine rebuilds, never writes back.
func TestSlice_DoesNotMutateInput(t *testing.T) {
	leaf := []float64{1, 2, 3, 4, 5}
	in := map[string]any{"a": leaf, "nested": map[string]any{"b": leaf}}

	_, err := slicetree.Slice(in, slicetree.Reversed(), 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, leaf, "input leaf must be untouched")
	assert.Len(t, in, 2, "input mapping must be untouched")
}
