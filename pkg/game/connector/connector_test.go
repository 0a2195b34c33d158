package connector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/region"
)

func rows(lines ...string) *world.Grid {
	return world.ParseGrid(strings.Join(lines, "\n") + "\n")
}

func TestPruneRemovesSmallRegions(t *testing.T) {
	g := rows(
		"############",
		"#..####....#",
		"#.#####....#",
		"#######....#",
		"############",
	)
	survivors, pruned := Prune(g, RoomThreshold)
	require.Len(t, survivors, 1)
	assert.Equal(t, 1, pruned)
	assert.Equal(t, 12, survivors[0].Size())

	for _, p := range []world.Point{{1, 1}, {2, 1}, {1, 2}} {
		assert.Equal(t, world.Wall, g.State(p.X, p.Y), "pruned cell %v", p)
	}
	assert.Equal(t, 12, g.Count(world.Floor))
}

func TestPruneKeepsRegionAtThreshold(t *testing.T) {
	g := rows(
		"############",
		"#..........#",
		"############",
	)
	survivors, pruned := Prune(g, 10)
	assert.Len(t, survivors, 1)
	assert.Zero(t, pruned)
}

func TestConnectTwoRegions(t *testing.T) {
	g := rows(
		"####################",
		"#......######......#",
		"#......######......#",
		"#......######......#",
		"#......######......#",
		"#......######......#",
		"####################",
	)
	regions, _ := Prune(g, RoomThreshold)
	require.Len(t, regions, 2)

	corridors := ConnectRegions(g, regions, DefaultRadius)
	require.Len(t, corridors, 1, "second region is already connected to the first")
	assert.True(t, regions[0].IsConnected(regions[1]))
	assert.InDelta(t, 7.0, corridors[0].Distance, 1e-9)
	assert.Equal(t, 1, Clusters(regions))

	floor := g.Count(world.Floor)
	for _, start := range []world.Point{{1, 1}, {18, 5}} {
		reached := region.FloodFill(g, start)
		assert.Len(t, reached, floor, "flood fill from %v", start)
	}
}

func TestConnectPicksNearestRegion(t *testing.T) {
	line := "#....###....############.....#"
	wall := strings.Repeat("#", len(line))
	g := rows(wall, line, line, line, line, line, wall)

	regions, _ := Prune(g, RoomThreshold)
	require.Len(t, regions, 3)
	a, b, c := regions[0], regions[1], regions[2]

	corridors := ConnectRegions(g, regions, DefaultRadius)
	require.Len(t, corridors, 3)

	assert.Same(t, b, corridors[0].B)
	assert.InDelta(t, 4.0, corridors[0].Distance, 1e-9)
	assert.Same(t, c, corridors[1].B)
	assert.Same(t, a, corridors[2].B)

	assert.Equal(t, 1, Clusters(regions))
	assert.Len(t, region.FloodFill(g, world.Point{X: 1, Y: 1}), g.Count(world.Floor))
}

func TestConnectSingleRegionCarvesNothing(t *testing.T) {
	g := rows(
		"#######",
		"#.....#",
		"#.....#",
		"#######",
	)
	before := g.Clone()
	regions, _ := Prune(g, RoomThreshold)
	assert.Empty(t, ConnectRegions(g, regions, DefaultRadius))
	assert.True(t, before.Equal(g))
}

func TestCarvePaintsBrush(t *testing.T) {
	g := world.NewGrid(9, 9)
	line := Carve(g, world.Point{X: 4, Y: 4}, world.Point{X: 4, Y: 4}, 2)
	assert.Equal(t, []world.Point{{X: 4, Y: 4}}, line)
	assert.Equal(t, 13, g.Count(world.Floor))
}

func TestClustersWithoutConnections(t *testing.T) {
	g := world.NewGrid(3, 3)
	regions := []*region.Region{
		region.New([]world.Point{{0, 0}}, g),
		region.New([]world.Point{{2, 2}}, g),
	}
	assert.Equal(t, 2, Clusters(regions))
	assert.Zero(t, Clusters(nil))
}
