// Package cycle implements two cycle-length finders: a linear
// functional-graph walk for max-out-degree <= 1 graphs, and a canonical
// minimum-node DFS for everything else.
package cycle

import "github.com/routingcycle/routingcycle/graph"

// Longest returns the length of the longest simple cycle in g, or
// (0, false) if g is acyclic. It dispatches to the functional-graph walk
// when every node has out-degree <= 1, and to the canonical DFS otherwise.
func Longest(g *graph.Graph) (length int, found bool) {
	if g.MaxOutDegree <= 1 {
		return functionalWalk(g)
	}
	return canonicalDFS(g)
}

// functionalWalk handles graphs where every node has at most one outgoing
// edge. Each node enters and leaves the visited/position tracking at most
// once, giving O(|V|) total work.
func functionalWalk(g *graph.Graph) (length int, found bool) {
	next := make(map[string]string, len(g.Nodes))
	for source, dests := range g.Adjacency {
		for dest := range dests {
			next[source] = dest
		}
	}

	visited := make(map[string]bool, len(g.Nodes))
	best := 0
	bestFound := false

	for start := range g.Nodes {
		if visited[start] {
			continue
		}

		positionInPath := make(map[string]int)
		path := make([]string, 0)
		current := start
		step := 0

		for {
			nxt, hasEdge := next[current]
			if !hasEdge {
				markVisited(visited, path)
				break
			}
			if visited[current] {
				markVisited(visited, path)
				break
			}
			if p, onPath := positionInPath[current]; onPath {
				length := step - p
				if !bestFound || length > best {
					best, bestFound = length, true
				}
				markVisited(visited, path)
				break
			}

			positionInPath[current] = step
			path = append(path, current)
			current = nxt
			step++
		}
	}

	return best, bestFound
}

func markVisited(visited map[string]bool, path []string) {
	for _, n := range path {
		visited[n] = true
	}
}
