package engine

import (
	"container/heap"
	"sort"
	"strings"
)

// MSTAlgorithm selects a spanning-tree construction strategy. Both yield
// trees of identical total weight on a connected scoped graph; ties
// among equal-weight edges may legitimately produce different but
// equally optimal edge sets.
type MSTAlgorithm string

const (
	// MSTPrim grows the tree from the source airport, always taking the
	// minimum-weight edge crossing the frontier.
	MSTPrim MSTAlgorithm = "prim"
	// MSTKruskal sorts all edges ascending and adds each one that does
	// not close a cycle, tracked with union-find.
	MSTKruskal MSTAlgorithm = "kruskal"
)

// ParseMSTAlgorithm maps a request string onto an MSTAlgorithm.
func ParseMSTAlgorithm(s string) (MSTAlgorithm, bool) {
	switch MSTAlgorithm(strings.ToLower(strings.TrimSpace(s))) {
	case MSTPrim:
		return MSTPrim, true
	case MSTKruskal:
		return MSTKruskal, true
	}
	return "", false
}

// mstScopeHops bounds the route subgraph the MST is computed over. The
// tree spans the airports relevant to one (source, dest) query, not the
// full airport universe; that scoped default is the only exposed mode.
const mstScopeHops = 3

// MSTEdge is one undirected edge of the spanning tree, endpoints in
// sorted order. Weight is the minimum price among parallel flights
// between the two airports; FlightNo names the flight realizing it.
type MSTEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Weight   float64 `json:"weight"`
	FlightNo string  `json:"flight_no"`
}

// MSTState is one recorded snapshot of a running MST construction.
type MSTState struct {
	Current     string    `json:"current,omitempty"`
	Considering *MSTEdge  `json:"considering,omitempty"`
	Visited     []string  `json:"visited"`
	Edges       []MSTEdge `json:"mst_edges"`
	TotalWeight float64   `json:"total_weight"`
}

// MSTResult is the finished tree over the scoped airport set.
type MSTResult struct {
	Edges       []MSTEdge `json:"mst_edges"`
	TotalWeight float64   `json:"total_weight"`
	Airports    []string  `json:"airports"`
}

// mstGraph is the undirected, price-weighted view the MST strategies
// operate on. Parallel flights collapse to the cheapest one per
// unordered airport pair.
type mstGraph struct {
	vertices []string
	adj      map[string][]MSTEdge
	edges    []MSTEdge // sorted by (weight, from, to)
}

// buildMSTGraph scopes the network to the route subgraph of the query
// and collapses it to canonical undirected edges.
func buildMSTGraph(g *Graph, source, dest string) (*mstGraph, error) {
	analysis, err := g.RouteSubgraph(source, dest, mstScopeHops)
	if err != nil {
		return nil, err
	}

	type pair struct{ a, b string }
	cheapest := make(map[pair]MSTEdge)
	for _, e := range analysis.Edges {
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		key := pair{a, b}
		if cur, ok := cheapest[key]; !ok || e.PriceUSD < cur.Weight {
			cheapest[key] = MSTEdge{From: a, To: b, Weight: e.PriceUSD, FlightNo: e.FlightNo}
		}
	}

	m := &mstGraph{
		vertices: analysis.Airports,
		adj:      make(map[string][]MSTEdge, len(analysis.Airports)),
	}
	for _, e := range cheapest {
		m.edges = append(m.edges, e)
		m.adj[e.From] = append(m.adj[e.From], e)
		m.adj[e.To] = append(m.adj[e.To], e)
	}
	sort.Slice(m.edges, func(i, j int) bool { return lessMSTEdge(m.edges[i], m.edges[j]) })
	for v := range m.adj {
		edges := m.adj[v]
		sort.Slice(edges, func(i, j int) bool { return lessMSTEdge(edges[i], edges[j]) })
	}
	return m, nil
}

// lessMSTEdge is the documented MST comparator: weight ascending, then
// endpoint codes. Shared by Prim's heap and Kruskal's sort so equal
// inputs order identically under both strategies.
func lessMSTEdge(a, b MSTEdge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

// other returns the endpoint of e opposite to v.
func (e MSTEdge) other(v string) string {
	if e.From == v {
		return e.To
	}
	return e.From
}

// SolveMST builds the minimum spanning tree of the scoped undirected
// graph for (source, dest) using the selected algorithm. A scoped set
// with vertices but no edges yields an empty tree. rec may be nil.
func SolveMST(g *Graph, source, dest string, alg MSTAlgorithm, rec *Recorder[MSTState]) (*MSTResult, error) {
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	m, err := buildMSTGraph(g, source, dest)
	if err != nil {
		return nil, err
	}

	t := &mstRun{m: m, visited: make(map[string]bool), rec: rec}
	if alg == MSTKruskal {
		t.kruskal()
	} else {
		t.prim(NormalizeCode(source))
	}
	t.snapshot("", nil)

	return &MSTResult{
		Edges:       t.edges,
		TotalWeight: t.total,
		Airports:    m.vertices,
	}, nil
}

// mstRun is the mutable state of one MST construction.
type mstRun struct {
	m       *mstGraph
	visited map[string]bool
	edges   []MSTEdge
	total   float64
	rec     *Recorder[MSTState]
}

func (t *mstRun) prim(root string) {
	t.visited[root] = true

	pq := mstHeap{}
	for _, e := range t.m.adj[root] {
		heap.Push(&pq, e)
	}
	t.snapshot(root, nil)

	for pq.Len() > 0 && len(t.edges) < len(t.m.vertices)-1 {
		e := heap.Pop(&pq).(MSTEdge)
		next := ""
		switch {
		case !t.visited[e.From]:
			next = e.From
		case !t.visited[e.To]:
			next = e.To
		default:
			// Both endpoints already in the tree: adding e would close a cycle.
			t.snapshot("", &e)
			continue
		}

		t.visited[next] = true
		t.accept(e)
		t.snapshot(next, &e)

		for _, ne := range t.m.adj[next] {
			if !t.visited[ne.other(next)] {
				heap.Push(&pq, ne)
			}
		}
	}
}

func (t *mstRun) kruskal() {
	uf := newUnionFind(t.m.vertices)
	t.snapshot("", nil)

	for _, e := range t.m.edges {
		if len(t.edges) >= len(t.m.vertices)-1 {
			break
		}
		if uf.find(e.From) == uf.find(e.To) {
			t.snapshot("", &e)
			continue
		}
		uf.union(e.From, e.To)
		t.visited[e.From] = true
		t.visited[e.To] = true
		t.accept(e)
		t.snapshot("", &e)
	}
}

func (t *mstRun) accept(e MSTEdge) {
	t.edges = append(t.edges, e)
	t.total += e.Weight
}

func (t *mstRun) snapshot(current string, considering *MSTEdge) {
	if t.rec == nil || t.rec.Full() {
		return
	}
	visited := make([]string, 0, len(t.visited))
	for v := range t.visited {
		visited = append(visited, v)
	}
	sort.Strings(visited)
	edges := make([]MSTEdge, len(t.edges))
	copy(edges, t.edges)

	t.rec.Record(MSTState{
		Current:     current,
		Considering: considering,
		Visited:     visited,
		Edges:       edges,
		TotalWeight: t.total,
	})
}

// unionFind is a disjoint-set forest with union by rank and path
// compression, used by Kruskal's cycle check.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(vertices []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, v := range vertices {
		uf.parent[v] = v
	}
	return uf
}

func (uf *unionFind) find(v string) string {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}
	return v
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		uf.parent[ra] = rb
		return
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// mstHeap is a min-heap of candidate edges ordered by lessMSTEdge.
type mstHeap []MSTEdge

func (h mstHeap) Len() int           { return len(h) }
func (h mstHeap) Less(i, j int) bool { return lessMSTEdge(h[i], h[j]) }
func (h mstHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *mstHeap) Push(x any) { *h = append(*h, x.(MSTEdge)) }

func (h *mstHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
