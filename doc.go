// Package gridstate is a search engine for state spaces laid over 2D grids.
//
// A grid map is parsed once into an immutable sparse index; searches then
// run over any comparable state type built on top of grid positions, such
// as a plain coordinate, a position with a facing direction, or a position
// with a remaining budget.
//
// Packages:
//
//	coord/      Coordinate and Direction value types, rotations, distances
//	gridgraph/  sparse labelled grid index: parsing, passability, regions, rendering
//	search/     breadth-first and uniform-cost search with predecessor sets and stop modes
//	route/      one path, every optimal path, path counts and tiles from a search result
//	moves/      ready-made transitions: plain steps, facing with turn cost, trails, budgets
//	threshold/  first obstacle prefix that blocks a goal: linear, binary and parallel scans
//	shortcut/   savings from one radius-bounded jump along a single-track route
//	config/     flag and environment configuration of the gridsearch command
//
// The gridsearch command (cmd/gridsearch) solves problems described in YAML
// files with these packages and checks the answers recorded with them.
//
// The search core never logs and never spawns goroutines. Parallelism lives
// in callers: threshold.Parallel fans probes out with errgroup, and the
// command solves several problems at once.
package gridstate
