// Package lvsearch is a toolkit for classical uninformed state-space search
// over graphs loaded from SNAP-style edge lists.
//
// 🚀 What is inside?
//
//	• core/     the Graph: a dense, index-addressed adjacency table of Actions
//	• dataset/  edge-list loader (plain or gzip) with header-based kind detection
//	• search/   BFS, uniform-cost, depth-limited, iterative-deepening,
//	            bi-directional and tree search returning Found / Failure / CutOff
//	• builder/  deterministic synthetic graphs: path, cycle, star, grid, complete, G(n,p)
//	• report/   fixed-width result table with terminal styling
//	• api/      HTTP endpoint running searches over one loaded graph
//	• cmd/lvsearch  the command-line front end (search, serve, generate)
//
// Quick ASCII example:
//
//	0───1───2───3
//
//	breadth-first from 0 to 3 → found(state=3 depth=3 cost=0), path [0 1 2 3]
//	depth-limited with limit 2 → cutoff
//
// Install the CLI:
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
