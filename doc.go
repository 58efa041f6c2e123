// Package bidigrid is your in-memory playground for bidimensional data —
// grids, views, geometric transforms, region editing and grid pathfinding.
//
// 🚀 What is bidigrid?
//
//	A generic, storage-agnostic library that brings together:
//		• Core primitives: coordinates, rectangles, clipping & connectivity
//		• Storage variants: owning, fixed-size, row-backed and borrowed grids
//		• Lazy views: transpose, rotations, reversals & crops without copying
//		• Editing: copy, blend, fill & flood fill with silent clipping
//		• Pathfinding: Dijkstra & A* over any view with caller-priced movement
//
// ✨ Why choose bidigrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Storage-agnostic – every algorithm works through the View contract
//   - Deterministic – searches and fills visit cells in a reproducible order
//   - Extensible – plug in cost functions, heuristics & fill predicates
//
// Under the hood, everything is organized under four subpackages:
//
//	bidi/     — the View/MutView contract, Coord, Rect, lazy transforms & iteration
//	grid/     — concrete storage: Grid, FixedGrid, RowGrid, Slice, MutSlice
//	editing/  — Copy, CloneOver, Blend, Fill & FloodFill
//	pathfind/ — Dijkstra, A*, heuristics & path reconstruction
//
// Quick ASCII example:
//
//	1 2 3        3 6
//	4 5 6   ──►  2 5
//	             1 4
//
// a 3×2 grid and its quarter-turn counter-clockwise rotation.
//
// Start with grid.NewOf to wrap your rows, then hand the grid to any
// algorithm that accepts a bidi.View.
//
//	go get github.com/katalvlaran/bidigrid
package bidigrid
