package removal_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/removal"
	"github.com/katalvlaran/mazepath/stategraph"
)

func loadTimeline(t *testing.T) *gridgraph.Timeline {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "bytes.txt"))
	require.NoError(t, err)
	defer f.Close()
	obs, err := gridgraph.ParseObstacles(f)
	require.NoError(t, err)
	require.Len(t, obs, 25)
	tl, err := gridgraph.NewTimeline(7, 7, obs)
	require.NoError(t, err)

	return tl
}

func TestDistanceAfter(t *testing.T) {
	tl := loadTimeline(t)
	start, goal := pt(0, 0), pt(6, 6)

	d, ok, err := removal.DistanceAfter(tl, 0, start, goal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(12), d)

	d, ok, err = removal.DistanceAfter(tl, 12, start, goal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(22), d)

	_, ok, err = removal.DistanceAfter(tl, tl.Len(), start, goal)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = removal.DistanceAfter(tl, 3, start, pt(7, 7))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfRange)
}

func TestFirstDisconnecting(t *testing.T) {
	tl := loadTimeline(t)
	d, found, err := removal.FirstDisconnecting(context.Background(), tl, pt(0, 0), pt(6, 6))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, removal.Disconnect{Obstacle: pt(6, 1), Index: 20}, d)
}

// TestFirstDisconnecting_MatchesLinearReplay checks the binary search against
// a plain replay that searches after every obstacle.
func TestFirstDisconnecting_MatchesLinearReplay(t *testing.T) {
	tl := loadTimeline(t)
	start, goal := pt(0, 0), pt(6, 6)
	model := stategraph.FreeModel()

	want := -1
	for k := 1; k <= tl.Len(); k++ {
		v := tl.Until(k)
		g, err := model.Build(v)
		require.NoError(t, err)
		_, ok, err := dijkstra.ShortestDistance(g, model.Start(start), goal)
		require.NoError(t, err)
		if !ok {
			want = k - 1
			break
		}
	}
	require.Equal(t, 20, want)

	// Every shorter prefix must keep the same answer or report none.
	for n := 1; n <= tl.Len(); n++ {
		obs := make([]gridgraph.Point, n)
		for i := range obs {
			obs[i] = tl.Obstacle(i)
		}
		sub, err := gridgraph.NewTimeline(7, 7, obs)
		require.NoError(t, err)
		d, found, err := removal.FirstDisconnecting(context.Background(), sub, start, goal)
		require.NoError(t, err)
		if n <= want {
			assert.False(t, found, "prefix %d", n)
			continue
		}
		assert.True(t, found, "prefix %d", n)
		assert.Equal(t, want, d.Index, "prefix %d", n)
	}
}

func TestFirstDisconnecting_CoveredEndpoint(t *testing.T) {
	// The second obstacle lands on the goal itself.
	tl, err := gridgraph.NewTimeline(3, 3, []gridgraph.Point{pt(1, 1), pt(2, 2), pt(0, 1)})
	require.NoError(t, err)
	d, found, err := removal.FirstDisconnecting(context.Background(), tl, pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, removal.Disconnect{Obstacle: pt(2, 2), Index: 1}, d)
}

func TestFirstDisconnecting_NeverDisconnects(t *testing.T) {
	tl, err := gridgraph.NewTimeline(3, 3, []gridgraph.Point{pt(1, 1), pt(1, 1), pt(2, 0)})
	require.NoError(t, err)
	_, found, err := removal.FirstDisconnecting(context.Background(), tl, pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFirstDisconnecting_Errors(t *testing.T) {
	_, _, err := removal.FirstDisconnecting(context.Background(), nil, pt(0, 0), pt(1, 1))
	assert.ErrorIs(t, err, removal.ErrNilMaze)

	tl, err := gridgraph.NewTimeline(2, 2, nil)
	require.NoError(t, err)
	_, _, err = removal.FirstDisconnecting(context.Background(), tl, pt(0, 0), pt(2, 2))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfRange)
	_, _, err = removal.FirstDisconnecting(context.Background(), tl, pt(-1, 0), pt(1, 1))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfRange)
	_, _, err = removal.FirstDisconnecting(context.Background(), tl, pt(0, 0), pt(1, 1), removal.WithWorkers(-2))
	assert.ErrorIs(t, err, removal.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = removal.FirstDisconnecting(ctx, loadTimeline(t), pt(0, 0), pt(6, 6))
	assert.ErrorIs(t, err, context.Canceled)
}
