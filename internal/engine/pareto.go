package engine

import "strings"

// paretoEnumerationStops bounds the candidate enumeration: simple paths
// with up to four intermediate stops are enough to surface dominated
// alternatives for display on realistic airport networks.
const paretoEnumerationStops = 4

// ParetoResult is the outcome of a multi-criteria route query: the
// non-dominated frontier plus every candidate considered, kept so the
// presentation layer can show which routes were dominated and why.
type ParetoResult struct {
	Routes     []*Route `json:"routes"`
	Candidates []*Route `json:"all_candidates"`
}

// Dominates reports whether a is no worse than b in price, duration and
// distance, and strictly better in at least one of them.
func Dominates(a, b *Route) bool {
	if a == nil || b == nil {
		return false
	}
	if a.TotalPriceUSD > b.TotalPriceUSD ||
		a.TotalDurationMin > b.TotalDurationMin ||
		a.TotalDistanceKM > b.TotalDistanceKM {
		return false
	}
	return a.TotalPriceUSD < b.TotalPriceUSD ||
		a.TotalDurationMin < b.TotalDurationMin ||
		a.TotalDistanceKM < b.TotalDistanceKM
}

// ParetoFilter reduces candidates to the maximal antichain under
// Dominates: no member of the result dominates another. Candidate order
// is preserved.
func ParetoFilter(candidates []*Route) []*Route {
	var frontier []*Route
	for i, r := range candidates {
		dominated := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if Dominates(other, r) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, r)
		}
	}
	return frontier
}

// FindPareto gathers candidate routes for (source, dest) and filters
// them to the Pareto frontier.
//
// Candidates are the bounded-stop enumeration of simple paths plus the
// three single-criterion optima (cheapest, fastest, shortest), so the
// frontier always contains each criterion's best route even when the
// enumeration bound would have missed it. Routes over the same airport
// path collapse to the first one found.
func FindPareto(n Network, source, dest string) (*ParetoResult, error) {
	base, err := n.Graph(ModeCheapest)
	if err != nil {
		return nil, err
	}

	candidates, err := EnumerateRoutes(base, source, dest, paretoEnumerationStops)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(candidates))
	deduped := candidates[:0]
	for _, r := range candidates {
		key := pathKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, r)
	}
	candidates = deduped

	for _, mode := range []Mode{ModeCheapest, ModeFastest, ModeShortest} {
		g, err := n.Graph(mode)
		if err != nil {
			return nil, err
		}
		r, err := FindRoute(g, source, dest, nil)
		if err != nil {
			continue // unreachable under this mode means unreachable under all
		}
		if key := pathKey(r); !seen[key] {
			seen[key] = true
			candidates = append(candidates, r)
		}
	}

	return &ParetoResult{
		Routes:     ParetoFilter(candidates),
		Candidates: candidates,
	}, nil
}

// pathKey identifies a route by its airport sequence.
func pathKey(r *Route) string {
	return strings.Join(r.Path, ">")
}
