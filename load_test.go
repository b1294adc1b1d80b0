package hashring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_SetLoad(t *testing.T) {
	r := New(Config{})
	r.Add("a")
	r.Add("b")

	require.True(t, r.SetLoad("a", 5))
	require.True(t, r.SetLoad("b", 2))
	assert.Equal(t, uint64(7), r.total)

	// replacement adjusts the aggregate by the delta, not the value
	require.True(t, r.SetLoad("a", 1))
	assert.Equal(t, uint64(3), r.total)
}

func TestRing_SetLoadUnknownHost(t *testing.T) {
	r := New(Config{})
	r.Add("a")

	assert.False(t, r.SetLoad("nope", 5))
	assert.Zero(t, r.total)
}

func TestRing_IncDecLoad(t *testing.T) {
	r := New(Config{})
	r.Add("a")

	require.True(t, r.IncLoad("a"))
	require.True(t, r.IncLoad("a"))
	assert.Equal(t, uint64(2), r.total)

	require.True(t, r.DecLoad("a"))
	assert.Equal(t, uint64(1), r.total)

	assert.False(t, r.IncLoad("nope"))
	assert.False(t, r.DecLoad("nope"))
	assert.Equal(t, uint64(1), r.total)
}

func TestRing_DecLoadSaturates(t *testing.T) {
	r := New(Config{})
	r.Add("a")

	assert.False(t, r.DecLoad("a"), "decrementing zero load must refuse rather than underflow")
	assert.Zero(t, r.total)
	assert.Zero(t, r.hosts[r.byName["a"]].load)
}

func TestRing_AvgLoad(t *testing.T) {
	r := New(Config{}) // load factor 1.25
	r.Add("a")
	r.Add("b")

	// ceil((0+1)/2 * 1.25) = ceil(0.625)
	assert.Equal(t, 1.0, r.AvgLoad())

	require.True(t, r.SetLoad("a", 4))
	require.True(t, r.SetLoad("b", 3))
	// ceil((7+1)/2 * 1.25) = ceil(5)
	assert.Equal(t, 5.0, r.AvgLoad())

	require.True(t, r.IncLoad("a"))
	// ceil((8+1)/2 * 1.25) = ceil(5.625)
	assert.Equal(t, 6.0, r.AvgLoad())
}

func TestRing_AvgLoadEmptyRing(t *testing.T) {
	r := New(Config{})

	// no registered hosts must not divide by zero; the floor of one unit
	// of headroom remains
	assert.Equal(t, 2.0, r.AvgLoad())
}

func TestRing_AvgLoadCustomFactor(t *testing.T) {
	r := New(Config{LoadFactor: 2})
	r.Add("a")

	require.True(t, r.SetLoad("a", 3))
	// ceil((3+1)/1 * 2) = 8
	assert.Equal(t, 8.0, r.AvgLoad())
}
