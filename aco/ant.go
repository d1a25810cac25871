// Package aco - stochastic tour construction.
//
// An Ant builds one closed Hamiltonian cycle per ConstructTour call. With a
// pheromone model attached it follows the classic ACO probabilistic rule:
//
//	attractiveness(j) = τ(current,j)^α · η(current,j)^β,  η = 1/d (1 when d==0)
//
// selecting the next city by roulette wheel over unvisited cities in index
// order, with a uniform-random fallback when total attractiveness is zero
// (a valid degenerate numeric state, not an error). Without a pheromone
// model it falls back to deterministic nearest-neighbor construction,
// useful as a baseline and in tests.
//
// The RNG is a capability: pass an external stream to coordinate seeding
// (the engine does this per ant), or nil to let the ant own a default
// deterministic stream.
//
// Ants read the graph and the pheromone field only; they never write
// shared state.
package aco

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/acotsp/core"
)

// Ant is a single stochastic tour builder.
type Ant struct {
	graph     *core.Graph
	pheromone *PheromoneModel // nil ⇒ greedy fallback
	alpha     float64         // pheromone importance exponent
	beta      float64         // heuristic importance exponent
	rng       *rand.Rand      // owned or borrowed stream, never nil after construction

	visited []bool // per-construction visited set
	current int    // current city during construction
}

// NewAnt creates an ant over g. pheromone may be nil (greedy construction);
// rng may be nil (the ant derives its own deterministic default stream).
//
// Errors: ErrNilGraph; ErrDimensionMismatch when the pheromone model order
// differs from the graph order.
//
// Complexity: O(n) for the visited set.
func NewAnt(g *core.Graph, pheromone *PheromoneModel, alpha, beta float64, rng *rand.Rand) (*Ant, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pheromone != nil && pheromone.Size() != g.Size() {
		return nil, ErrDimensionMismatch
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return &Ant{
		graph:     g,
		pheromone: pheromone,
		alpha:     alpha,
		beta:      beta,
		rng:       rng,
		visited:   make([]bool, g.Size()),
	}, nil
}

// CurrentCity returns the ant's position during construction.
// Complexity: O(1).
func (a *Ant) CurrentCity() int {
	return a.current
}

// SetCurrentCity resets the visited set and places the ant at city.
// Complexity: O(n).
func (a *Ant) SetCurrentCity(city int) error {
	if city < 0 || city >= a.graph.Size() {
		return ErrOutOfRange
	}
	a.Reset()
	a.current = city
	a.visited[city] = true

	return nil
}

// MarkVisited flags a city as visited.
// Complexity: O(1).
func (a *Ant) MarkVisited(city int) error {
	if city < 0 || city >= len(a.visited) {
		return ErrOutOfRange
	}
	a.visited[city] = true

	return nil
}

// Reset clears the visited set for a fresh construction.
// Complexity: O(n).
func (a *Ant) Reset() {
	var i int
	for i = range a.visited {
		a.visited[i] = false
	}
	a.current = 0
}

// ConstructTour builds one closed cycle over all cities: probabilistic ACO
// construction when a pheromone model is attached, deterministic
// nearest-neighbor otherwise. Construction always starts at city 0.
//
// Complexity: O(n²) time, O(n) space.
func (a *Ant) ConstructTour() (*core.Tour, error) {
	var (
		path []int
		err  error
	)
	if a.pheromone != nil {
		path, err = a.constructProbabilistic()
	} else {
		path, err = a.constructGreedy()
	}
	if err != nil {
		return nil, err
	}

	return core.NewTour(a.graph, path)
}

// attractiveness computes τ^α·η^β for the edge current→to.
// η = 1/d, with η = 1 when d == 0 to avoid the division.
// Complexity: O(1).
func (a *Ant) attractiveness(to int) (float64, error) {
	tau, err := a.pheromone.Pheromone(a.current, to)
	if err != nil {
		return 0, err
	}
	d, err := a.graph.Distance(a.current, to)
	if err != nil {
		return 0, err
	}

	eta := 1.0
	if d > 0 {
		eta = 1.0 / d
	}

	return math.Pow(tau, a.alpha) * math.Pow(eta, a.beta), nil
}

// SelectionProbabilities returns the normalized selection probability for
// every city from the ant's current position: 0 for visited cities and the
// current city, attractiveness/total for unvisited ones. When total
// attractiveness is zero all entries are zero.
//
// Requires a pheromone model (ErrNoPheromoneModel otherwise).
//
// Complexity: O(n).
func (a *Ant) SelectionProbabilities() ([]float64, error) {
	if a.pheromone == nil {
		return nil, ErrNoPheromoneModel
	}

	var (
		n     = a.graph.Size()
		probs = make([]float64, n)
		total float64
		city  int
		w     float64
		err   error
	)
	for city = 0; city < n; city++ {
		if a.visited[city] {
			continue
		}
		w, err = a.attractiveness(city)
		if err != nil {
			return nil, err
		}
		probs[city] = w
		total += w
	}

	if total > 0 {
		for city = 0; city < n; city++ {
			probs[city] /= total
		}
	}

	return probs, nil
}

// ChooseNextCity picks the next city by roulette wheel over the raw
// attractiveness of unvisited cities, walking cumulative weight in index
// order. A zero total falls back to a uniform-random unvisited city.
// Returns NoCity when every city has been visited.
//
// Requires a pheromone model (ErrNoPheromoneModel otherwise).
//
// Complexity: O(n).
func (a *Ant) ChooseNextCity() (int, error) {
	if a.pheromone == nil {
		return NoCity, ErrNoPheromoneModel
	}

	var (
		n         = a.graph.Size()
		weights   = make([]float64, n)
		unvisited = make([]int, 0, n)
		total     float64
		city      int
		w         float64
		err       error
	)
	for city = 0; city < n; city++ {
		if a.visited[city] {
			continue
		}
		unvisited = append(unvisited, city)
		w, err = a.attractiveness(city)
		if err != nil {
			return NoCity, err
		}
		weights[city] = w
		total += w
	}

	if len(unvisited) == 0 {
		return NoCity, nil
	}

	// Degenerate pheromone state: uniform choice keeps the walk alive.
	if total <= 0 {
		return unvisited[a.rng.Intn(len(unvisited))], nil
	}

	var (
		draw       = a.rng.Float64() * total // uniform in [0, total)
		cumulative float64
		i          int
	)
	for i = 0; i < len(unvisited); i++ {
		city = unvisited[i]
		cumulative += weights[city]
		if draw < cumulative {
			return city, nil
		}
	}

	// FP slack: cumulative rounding can leave the draw uncovered.
	return unvisited[len(unvisited)-1], nil
}

// constructProbabilistic runs the ACO construction: start at city 0, make
// n−1 probabilistic choices, close the cycle back to 0.
//
// Complexity: O(n²).
func (a *Ant) constructProbabilistic() ([]int, error) {
	var (
		n    = a.graph.Size()
		path = make([]int, 0, n+1)
		next int
		step int
		err  error
	)

	if err = a.SetCurrentCity(0); err != nil {
		return nil, err
	}
	path = append(path, 0)

	for step = 1; step < n; step++ {
		next, err = a.ChooseNextCity()
		if err != nil {
			return nil, err
		}
		if next == NoCity {
			break
		}
		path = append(path, next)
		a.visited[next] = true
		a.current = next
	}

	// Close the cycle.
	path = append(path, 0)

	return path, nil
}

// constructGreedy runs deterministic nearest-neighbor construction from
// city 0 with a smallest-index tie-break, closing the cycle at the end.
//
// Complexity: O(n²).
func (a *Ant) constructGreedy() ([]int, error) {
	var (
		n    = a.graph.Size()
		path = make([]int, 0, n+1)
		err  error
	)

	if err = a.SetCurrentCity(0); err != nil {
		return nil, err
	}
	path = append(path, 0)

	var (
		step int
		city int
		next int
		d    float64
		best float64
	)
	for step = 1; step < n; step++ {
		next = NoCity
		best = math.Inf(1)
		for city = 0; city < n; city++ {
			if a.visited[city] {
				continue
			}
			d, err = a.graph.Distance(a.current, city)
			if err != nil {
				return nil, err
			}
			// Strict < with ascending scan keeps the smallest index on ties.
			if d < best {
				best = d
				next = city
			}
		}
		if next == NoCity {
			break
		}
		path = append(path, next)
		a.visited[next] = true
		a.current = next
	}

	path = append(path, 0)

	return path, nil
}
