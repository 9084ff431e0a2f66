package engine

import (
	"container/heap"
	"math"
	"sort"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

// Strategy selects a Dijkstra implementation. Both strategies share one
// contract: identical final distances and identical came_from maps for
// the same graph and mode. Only their operation profile differs.
type Strategy string

const (
	// StrategyHeap uses a binary min-heap with lazy decrease-key:
	// duplicates are pushed and stale pops are ignored. O((V+E) log V).
	StrategyHeap Strategy = "heap"
	// StrategyArray scans all unvisited vertices for the minimum
	// tentative distance on every iteration. O(V^2).
	StrategyArray Strategy = "array"
)

// Counters exposes operation counts for performance comparison between
// the two strategies. Comparisons is populated by the array strategy,
// HeapOps by the heap strategy.
type Counters struct {
	ExtractMinOps int `json:"extract_min_ops"`
	RelaxOps      int `json:"relax_ops"`
	Comparisons   int `json:"comparisons,omitempty"`
	HeapOps       int `json:"heap_operations,omitempty"`
}

// FrontierEntry is one (vertex, tentative cost) pair of the frontier.
type FrontierEntry struct {
	Code string  `json:"code"`
	Cost float64 `json:"cost"`
}

// RelaxEvent describes the edge considered by the last relaxation and
// whether it improved the best-known cost of its destination.
type RelaxEvent struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	FlightNo string  `json:"flight_no"`
	Updated  bool    `json:"updated"`
	NewCost  float64 `json:"new_cost"`
}

// SearchState is one recorded snapshot of a running shortest-path
// search, sized for visualization replay rather than resumption.
type SearchState struct {
	Step      int                `json:"step"`
	Current   string             `json:"current,omitempty"`
	Frontier  []FrontierEntry    `json:"frontier"`
	Distances map[string]float64 `json:"distances"`
	Visited   []string           `json:"visited"`
	CameFrom  map[string]string  `json:"came_from"`
	Relax     *RelaxEvent        `json:"relax,omitempty"`
}

// SearchResult carries everything a caller needs after a search: the
// finalized distance map (finite entries only; absence is definitive
// unreachability), parent pointers and the edges that realized them.
type SearchResult struct {
	Source   string
	Dest     string
	Dist     map[string]float64
	CameFrom map[string]string
	EdgeTo   map[string]domain.Flight
	Found    bool
	Counters Counters
}

// Solve runs the selected Dijkstra strategy from source towards dest.
// The search stops as soon as the destination is finalized; that early
// exit is part of the shared contract, so both strategies finalize the
// same vertex sequence. rec may be nil to skip tracing.
func Solve(g *Graph, strategy Strategy, source, dest string, rec *Recorder[SearchState]) (*SearchResult, error) {
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if err := g.requireAirports(source, dest); err != nil {
		return nil, err
	}
	if source == dest {
		return nil, ErrSameAirport
	}

	s := &search{
		g:        g,
		source:   source,
		dest:     dest,
		dist:     map[string]float64{source: 0},
		cameFrom: make(map[string]string),
		edgeTo:   make(map[string]domain.Flight),
		visited:  make(map[string]bool),
		rec:      rec,
	}

	if strategy == StrategyArray {
		s.runArray()
	} else {
		s.runHeap()
	}

	return &SearchResult{
		Source:   source,
		Dest:     dest,
		Dist:     s.dist,
		CameFrom: s.cameFrom,
		EdgeTo:   s.edgeTo,
		Found:    s.visited[dest],
		Counters: s.counters,
	}, nil
}

// search holds the mutable state of one Dijkstra run. Both strategies
// share it so their relaxation and snapshot behavior cannot drift apart.
type search struct {
	g        *Graph
	source   string
	dest     string
	dist     map[string]float64
	cameFrom map[string]string
	edgeTo   map[string]domain.Flight
	visited  map[string]bool
	counters Counters
	step     int
	rec      *Recorder[SearchState]
}

func (s *search) runHeap() {
	pq := &frontierHeap{{code: s.source, cost: 0}}
	heap.Init(pq)
	s.counters.HeapOps++

	s.snapshot("", s.heapFrontier(*pq), nil)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		s.counters.HeapOps++
		s.counters.ExtractMinOps++
		if s.visited[item.code] {
			continue // stale entry left behind by lazy decrease-key
		}
		s.visited[item.code] = true
		s.snapshot(item.code, s.heapFrontier(*pq), nil)

		if item.code == s.dest {
			return
		}

		for _, f := range s.g.Neighbors(item.code) {
			s.counters.RelaxOps++
			if !s.relax(item.code, f) {
				continue
			}
			heap.Push(pq, frontierItem{code: f.To, cost: s.dist[f.To]})
			s.counters.HeapOps++
			s.snapshot(item.code, s.heapFrontier(*pq), &RelaxEvent{
				From:     f.From,
				To:       f.To,
				FlightNo: f.FlightNo,
				Updated:  true,
				NewCost:  s.dist[f.To],
			})
		}
	}
}

// relax attempts to improve the best-known cost of f.To through f.
// Strict improvement only: on an equal cost the earlier edge wins, and
// neighbor lists are ordered (weight, destination, flight number), so
// the tie-break is the lexicographically smaller destination for both
// strategies.
func (s *search) relax(from string, f domain.Flight) bool {
	next := f.To
	cand := s.dist[from] + s.g.Weight(f)
	best, seen := s.dist[next]
	if seen && cand >= best {
		return false
	}
	s.dist[next] = cand
	s.cameFrom[next] = from
	s.edgeTo[next] = f
	return true
}

// snapshot records one SearchState with defensive copies of the maps.
func (s *search) snapshot(current string, frontier []FrontierEntry, relax *RelaxEvent) {
	if s.rec == nil || s.rec.Full() {
		s.step++
		return
	}
	dist := make(map[string]float64, len(s.dist))
	for k, v := range s.dist {
		dist[k] = v
	}
	came := make(map[string]string, len(s.cameFrom))
	for k, v := range s.cameFrom {
		came[k] = v
	}
	visited := make([]string, 0, len(s.visited))
	for code := range s.visited {
		visited = append(visited, code)
	}
	sort.Strings(visited)

	s.rec.Record(SearchState{
		Step:      s.step,
		Current:   current,
		Frontier:  frontier,
		Distances: dist,
		Visited:   visited,
		CameFrom:  came,
		Relax:     relax,
	})
	s.step++
}

// heapFrontier flattens the queue into (vertex, cost) pairs, dropping
// stale entries and keeping the cheapest entry per vertex, ordered by
// (cost, code).
func (s *search) heapFrontier(pq frontierHeap) []FrontierEntry {
	best := make(map[string]float64, len(pq))
	for _, item := range pq {
		if s.visited[item.code] {
			continue
		}
		if cur, ok := best[item.code]; !ok || item.cost < cur {
			best[item.code] = item.cost
		}
	}
	return sortedFrontier(best)
}

func sortedFrontier(best map[string]float64) []FrontierEntry {
	entries := make([]FrontierEntry, 0, len(best))
	for code, cost := range best {
		entries = append(entries, FrontierEntry{Code: code, Cost: cost})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Cost != entries[j].Cost {
			return entries[i].Cost < entries[j].Cost
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// frontierItem pairs a vertex with a tentative distance in the heap.
type frontierItem struct {
	code string
	cost float64
}

// frontierHeap is a min-heap of frontier items ordered by cost, with the
// vertex code as the documented tie-break.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].code < h[j].code
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// infinity is the sentinel tentative distance of undiscovered vertices
// in the array strategy.
var infinity = math.Inf(1)
