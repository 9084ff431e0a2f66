package engine

import (
	"math"
	"sort"
)

// GraphStats summarizes the structure of the whole network. Density is
// the directed-graph density E / (V*(V-1)), self-loops excluded; degree
// figures are out-degrees.
type GraphStats struct {
	Vertices     int     `json:"vertices"`
	Edges        int     `json:"edges"`
	Density      float64 `json:"density"`
	AvgOutDegree float64 `json:"avg_out_degree"`
	MinOutDegree int     `json:"min_out_degree"`
	MaxOutDegree int     `json:"max_out_degree"`
}

// Stats computes network-wide structure statistics.
func (g *Graph) Stats() GraphStats {
	s := GraphStats{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	if s.Vertices > 1 {
		s.Density = round4(float64(s.Edges) / float64(s.Vertices*(s.Vertices-1)))
	}
	for i, code := range g.codes {
		deg := len(g.adj[code])
		if i == 0 || deg < s.MinOutDegree {
			s.MinOutDegree = deg
		}
		if deg > s.MaxOutDegree {
			s.MaxOutDegree = deg
		}
	}
	if s.Vertices > 0 {
		s.AvgOutDegree = round4(float64(s.Edges) / float64(s.Vertices))
	}
	return s
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// AdjacencyEntry is one outgoing edge in the adjacency-list view.
type AdjacencyEntry struct {
	To          string  `json:"to"`
	FlightNo    string  `json:"flight_no"`
	PriceUSD    float64 `json:"price_usd"`
	DurationMin int     `json:"duration_min"`
}

// AdjacencyList returns the network as code -> outgoing edges, limited
// to airports that take part in at least one flight. Entries are ordered
// by destination code, then flight number.
func (g *Graph) AdjacencyList() map[string][]AdjacencyEntry {
	inNetwork := make(map[string]bool)
	for _, f := range g.edges {
		inNetwork[f.From] = true
		inNetwork[f.To] = true
	}

	list := make(map[string][]AdjacencyEntry, len(inNetwork))
	for code := range inNetwork {
		entries := make([]AdjacencyEntry, 0, len(g.adj[code]))
		for _, f := range g.adj[code] {
			entries = append(entries, AdjacencyEntry{
				To:          f.To,
				FlightNo:    f.FlightNo,
				PriceUSD:    f.PriceUSD,
				DurationMin: f.DurationMin,
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].To != entries[j].To {
				return entries[i].To < entries[j].To
			}
			return entries[i].FlightNo < entries[j].FlightNo
		})
		list[code] = entries
	}
	return list
}

// MatrixView is the dense V x V representation of the network. Cell
// [i][j] holds the minimum price among flights codes[i] -> codes[j], or
// 0 when there is no edge. The diagonal is always 0: no self-loops.
type MatrixView struct {
	Airports []string    `json:"airports"`
	Matrix   [][]float64 `json:"matrix"`
}

// AdjacencyMatrix builds the dense view over all airports, isolated
// ones included, in sorted code order.
func (g *Graph) AdjacencyMatrix() MatrixView {
	index := make(map[string]int, len(g.codes))
	for i, code := range g.codes {
		index[code] = i
	}
	matrix := make([][]float64, len(g.codes))
	for i := range matrix {
		matrix[i] = make([]float64, len(g.codes))
	}
	for _, f := range g.edges {
		i, j := index[f.From], index[f.To]
		if i == j {
			continue
		}
		if matrix[i][j] == 0 || f.PriceUSD < matrix[i][j] {
			matrix[i][j] = f.PriceUSD
		}
	}
	return MatrixView{Airports: g.codes, Matrix: matrix}
}

// IsReachable reports directed reachability from source to dest by BFS.
func (g *Graph) IsReachable(source, dest string) (bool, error) {
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if err := g.requireAirports(source, dest); err != nil {
		return false, err
	}
	if source == dest {
		return true, nil
	}
	visited := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, f := range g.adj[current] {
			if f.To == dest {
				return true, nil
			}
			if !visited[f.To] {
				visited[f.To] = true
				queue = append(queue, f.To)
			}
		}
	}
	return false, nil
}

// Components returns the connected components of the undirected view of
// the network, each sorted internally, ordered by their smallest code.
func (g *Graph) Components() [][]string {
	und := make(map[string][]string, len(g.codes))
	for _, f := range g.edges {
		und[f.From] = append(und[f.From], f.To)
		und[f.To] = append(und[f.To], f.From)
	}

	visited := make(map[string]bool, len(g.codes))
	var components [][]string
	for _, start := range g.codes {
		if visited[start] {
			continue
		}
		visited[start] = true
		component := []string{start}
		queue := []string{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, next := range und[current] {
				if !visited[next] {
					visited[next] = true
					component = append(component, next)
					queue = append(queue, next)
				}
			}
		}
		sort.Strings(component)
		components = append(components, component)
	}
	return components
}

// SubgraphEdge is one flight of an extracted route subgraph.
type SubgraphEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	FlightNo string  `json:"flight_no"`
	PriceUSD float64 `json:"price_usd"`
}

// SubgraphAnalysis describes the part of the network that matters for
// one (source, dest) pair: every airport and flight lying on at least
// one simple path from source to dest within the hop bound, plus path
// counts and the endpoint degrees in the full network.
type SubgraphAnalysis struct {
	Source          string         `json:"source"`
	Dest            string         `json:"dest"`
	Airports        []string       `json:"airports"`
	Edges           []SubgraphEdge `json:"edges"`
	VertexCount     int            `json:"vertices_count"`
	EdgeCount       int            `json:"edges_count"`
	DirectPaths     int            `json:"direct_paths"`
	OneStopPaths    int            `json:"one_stop_paths"`
	TwoStopPaths    int            `json:"two_stop_paths"`
	TotalPaths      int            `json:"total_paths"`
	SourceOutDegree int            `json:"source_out_degree"`
	DestInDegree    int            `json:"dest_in_degree"`
	Connected       bool           `json:"is_connected"`
}

// RouteSubgraph extracts the induced subgraph of simple source->dest
// paths with at most maxHops legs. Parallel flights on the same airport
// sequence count as distinct paths, matching the multigraph semantics
// of the rest of the engine.
func (g *Graph) RouteSubgraph(source, dest string, maxHops int) (*SubgraphAnalysis, error) {
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if err := g.requireAirports(source, dest); err != nil {
		return nil, err
	}
	if source == dest {
		return nil, ErrSameAirport
	}

	airports := map[string]bool{source: true, dest: true}
	seenEdge := make(map[SubgraphEdge]bool)
	var edges []SubgraphEdge

	analysis := &SubgraphAnalysis{Source: source, Dest: dest}

	var (
		pathEdges []SubgraphEdge
		onPath    = map[string]bool{source: true}
		walk      func(current string, hopsLeft int)
	)
	walk = func(current string, hopsLeft int) {
		if current == dest && len(pathEdges) > 0 {
			for _, e := range pathEdges {
				airports[e.From] = true
				airports[e.To] = true
				if !seenEdge[e] {
					seenEdge[e] = true
					edges = append(edges, e)
				}
			}
			switch len(pathEdges) {
			case 1:
				analysis.DirectPaths++
			case 2:
				analysis.OneStopPaths++
			case 3:
				analysis.TwoStopPaths++
			}
			analysis.TotalPaths++
			return
		}
		if hopsLeft <= 0 {
			return
		}
		for _, f := range g.adj[current] {
			if onPath[f.To] {
				continue
			}
			onPath[f.To] = true
			pathEdges = append(pathEdges, SubgraphEdge{
				From:     f.From,
				To:       f.To,
				FlightNo: f.FlightNo,
				PriceUSD: f.PriceUSD,
			})
			walk(f.To, hopsLeft-1)
			pathEdges = pathEdges[:len(pathEdges)-1]
			onPath[f.To] = false
		}
	}
	walk(source, maxHops)

	analysis.Airports = make([]string, 0, len(airports))
	for code := range airports {
		analysis.Airports = append(analysis.Airports, code)
	}
	sort.Strings(analysis.Airports)
	analysis.Edges = edges
	analysis.VertexCount = len(analysis.Airports)
	analysis.EdgeCount = len(edges)
	analysis.SourceOutDegree = len(g.adj[source])
	for _, f := range g.edges {
		if f.To == dest {
			analysis.DestInDegree++
		}
	}
	analysis.Connected = analysis.TotalPaths > 0
	return analysis, nil
}
