// Package traverse implements the breadth-first and depth-first walks and
// path searches that run over a graph.Neighborer.
//
// Every function is self-contained: the frontier and the visited set live for
// a single call and nothing is cached between calls. Neighbor order is not
// specified by the store, so only set-level results are stable: which vertices
// are visited, and the length of a breadth-first path.
//
// Visitation:
//
//   - BFT walks with a FIFO queue.
//   - DFT walks with a LIFO stack.
//   - DFTRecursive walks depth-first through recursion, sharing one visited
//     set between all sibling calls.
//
// Search:
//
//   - BFS returns a shortest path by edge count.
//   - DFS and DFSRecursive return some path.
//
// A search that exhausts its frontier reports found == false with a nil
// error. Errors are reserved for unknown vertices and visitor failures.
//
// Recursion depth of the recursive forms grows with the longest simple path
// reachable from the start vertex.
package traverse
