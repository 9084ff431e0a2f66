package engine

// runArray is the O(V^2) Dijkstra strategy: every iteration scans all
// unvisited vertices for the minimum tentative distance. Vertices are
// scanned in sorted code order with a strict less-than, so an equal-cost
// tie selects the lexicographically smaller code, the same order the
// heap strategy produces.
func (s *search) runArray() {
	codes := s.g.Codes()

	s.snapshot("", s.arrayFrontier(), nil)

	for {
		current := ""
		min := infinity
		for _, code := range codes {
			if s.visited[code] {
				continue
			}
			s.counters.Comparisons++
			if d, ok := s.dist[code]; ok && d < min {
				min = d
				current = code
			}
		}
		s.counters.ExtractMinOps++
		if current == "" {
			return // every remaining vertex is unreachable
		}

		s.visited[current] = true
		s.snapshot(current, s.arrayFrontier(), nil)

		if current == s.dest {
			return
		}

		for _, f := range s.g.Neighbors(current) {
			if s.visited[f.To] {
				continue
			}
			s.counters.RelaxOps++
			s.counters.Comparisons++
			if !s.relax(current, f) {
				continue
			}
			s.snapshot(current, s.arrayFrontier(), &RelaxEvent{
				From:     f.From,
				To:       f.To,
				FlightNo: f.FlightNo,
				Updated:  true,
				NewCost:  s.dist[f.To],
			})
		}
	}
}

// arrayFrontier lists every discovered, unvisited vertex with its
// tentative distance, ordered by (cost, code).
func (s *search) arrayFrontier() []FrontierEntry {
	best := make(map[string]float64)
	for code, d := range s.dist {
		if !s.visited[code] {
			best[code] = d
		}
	}
	return sortedFrontier(best)
}
