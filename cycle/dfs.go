package cycle

import (
	"sort"

	"github.com/routingcycle/routingcycle/graph"
)

// canonicalDFS finds the longest simple cycle in a general directed graph,
// enumerating each simple cycle exactly once via the canonical-start rule:
// a cycle is only ever discovered from a DFS rooted at its
// lexicographically smallest node, and the DFS never steps to a node with
// a smaller index than the root.
func canonicalDFS(g *graph.Graph) (length int, found bool) {
	nodes := make([]string, 0, len(g.Nodes))
	for n := range g.Nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	indexOf := make(map[string]int, len(nodes))
	for i, n := range nodes {
		indexOf[n] = i
	}

	onPath := make(map[string]bool, len(nodes))
	best := 0
	bestFound := false

	var walk func(start string, startIdx int, current string, depth int)
	walk = func(start string, startIdx int, current string, depth int) {
		onPath[current] = true
		for neighbor := range g.Adjacency[current] {
			if neighbor == start {
				length := depth + 1
				if !bestFound || length > best {
					best, bestFound = length, true
				}
				continue
			}
			if indexOf[neighbor] <= startIdx || onPath[neighbor] {
				continue
			}
			walk(start, startIdx, neighbor, depth+1)
		}
		onPath[current] = false
	}

	for startIdx, start := range nodes {
		walk(start, startIdx, start, 0)
	}

	return best, bestFound
}
