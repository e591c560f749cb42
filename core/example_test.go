package core_test

import (
	"fmt"

	"github.com/katalvlaran/influencemap/core"
)

// ExampleGraph demonstrates point and connection lifecycle.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Three points on default terrain.
	for id := core.PointID(0); id < 3; id++ {
		_ = g.AddPoint(id, core.DefaultTerrain())
	}

	// 2) 0↔1 at the default weight, 1→2 one way at weight 2.5.
	_ = g.ConnectPoints(0, 1)
	_ = g.ConnectPoints(1, 2, core.WithWeight(2.5), core.Unidirectional())

	fmt.Println("1→2:", g.HasConnection(1, 2), "2→1:", g.HasConnection(2, 1))
	out, _ := g.OutgoingConnections(1)
	fmt.Println("out(1):", out)

	// 3) Removing 1 drops every connection touching it.
	_ = g.RemovePoint(1)
	fmt.Println("points:", g.Points(), "connections:", g.ConnectionCount())

	// Output:
	// 1→2: true 2→1: false
	// out(1): [1->0(1) 1->2(2.5)]
	// points: [0 2] connections: 0
}

// ExampleGraph_DisablePoint shows masking and terrain tagging.
func ExampleGraph_DisablePoint() {
	g := core.NewGraph()
	_ = g.AddPoint(0, core.DefaultTerrain())
	_ = g.AddPoint(1, core.DefaultTerrain())

	_ = g.DisablePoint(0)
	_ = g.SetTerrainForPoint(1, core.Terrain(5))

	t1, _ := g.TerrainForPoint(1)
	fmt.Println(g.IsPointDisabled(0), g.IsPointDisabled(1), t1)

	_, err := g.TerrainForPoint(7)
	fmt.Println(err)

	// Output:
	// true false terrain(5)
	// core: unknown point
}
