package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/akmonengine/triangles"
	"github.com/akmonengine/triangles/geom"
)

const (
	trianglesCount = 10000
	sceneSize      = 100.0
	triangleSpread = 2.0
)

func randomPoint(rng *rand.Rand, center geom.Point) geom.Point {
	offset := geom.Vector{
		(rng.Float64()*2 - 1) * triangleSpread,
		(rng.Float64()*2 - 1) * triangleSpread,
		(rng.Float64()*2 - 1) * triangleSpread,
	}
	return center.Add(offset)
}

func main() {
	rng := rand.New(rand.NewSource(1))

	scene := triangles.Scene{Config: triangles.Config{Workers: 4}}
	for range trianglesCount {
		center := geom.NewPoint(rng.Float64()*sceneSize, rng.Float64()*sceneSize, rng.Float64()*sceneSize)
		scene.Add(randomPoint(rng, center), randomPoint(rng, center), randomPoint(rng, center))
	}

	start := time.Now()
	tree := scene.Partition()
	built := time.Since(start)
	ids, pairs := triangles.NarrowPhase(tree)
	elapsed := time.Since(start)

	stats := tree.Stats()
	fmt.Printf("🌳 Octree: %d nodes, %d leaves, depth %d, max load %d (built in %v)\n",
		stats.Nodes, stats.Leaves, stats.MaxDepth, stats.MaxLoad, built)
	fmt.Printf("🎯 Octree: %d intersecting triangles, %d pairs in %v\n", len(ids), len(pairs), elapsed)

	start = time.Now()
	bruteIDs, _ := triangles.BruteForce(scene.Triangles)
	fmt.Printf("🐢 Brute force: %d intersecting triangles in %v\n", len(bruteIDs), time.Since(start))

	if len(bruteIDs) != len(ids) {
		fmt.Println("⚠️  results differ")
	}
}
