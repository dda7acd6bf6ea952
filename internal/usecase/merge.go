package usecase

import (
	"sort"
	"strings"

	"github.com/KananVyas/flyGPT/internal/domain"
)

// Decision records why a candidate was kept or dropped by the merge.
type Decision string

const (
	DecisionAccepted  Decision = "accepted"
	DecisionNotBest   Decision = "not_best"
	DecisionProvider  Decision = "provider"
	DecisionStops     Decision = "stops"
	DecisionDuplicate Decision = "duplicate"
)

// merger owns all state shared between dates of one search: the accepted
// list, the dedup id set and the effective provider set. Only the search
// loop calls it, so it needs no lock.
type merger struct {
	maxStops int
	newID    func() string

	// fixed is true when the caller named providers up front; the set
	// then never grows.
	fixed     bool
	providers map[string]struct{}
	order     []string

	accepted   map[string]struct{}
	candidates []domain.FlightCandidate
	seen       int
	decisions  map[Decision]int
}

func newMerger(req domain.SearchRequest, newID func() string) *merger {
	m := &merger{
		maxStops:  req.MaxStops,
		newID:     newID,
		providers: make(map[string]struct{}),
		accepted:  make(map[string]struct{}),
		decisions: make(map[Decision]int),
	}
	for _, p := range req.SpecificProviders {
		name := strings.ToLower(strings.TrimSpace(p))
		if name == "" {
			continue
		}
		m.fixed = true
		m.addProvider(name)
	}
	return m
}

func (m *merger) addProvider(name string) {
	if _, ok := m.providers[name]; ok {
		return
	}
	m.providers[name] = struct{}{}
	m.order = append(m.order, name)
}

// merge folds one date's result into the working list and returns how many
// of its candidates were accepted.
func (m *merger) merge(res *domain.PerDateResult) int {
	accepted := 0
	for _, c := range res.Candidates {
		c.ID = m.newID()
		c.Date = res.Date
		m.seen++

		d := m.admit(c)
		m.decisions[d]++
		if d != DecisionAccepted {
			continue
		}
		m.accepted[c.ID] = struct{}{}
		m.candidates = append(m.candidates, c)
		accepted++
	}
	return accepted
}

// admit applies the acceptance tests in order. With no providers named, a
// provider is admitted into the set the first time any candidate carries it,
// before that candidate is tested.
func (m *merger) admit(c domain.FlightCandidate) Decision {
	name := strings.ToLower(strings.TrimSpace(c.ProviderName))
	if !m.fixed {
		m.addProvider(name)
	}

	switch {
	case !c.IsBestForDate:
		return DecisionNotBest
	case !m.hasProvider(name):
		return DecisionProvider
	case c.Stops > m.maxStops:
		return DecisionStops
	case m.isAccepted(c.ID):
		return DecisionDuplicate
	default:
		return DecisionAccepted
	}
}

func (m *merger) hasProvider(name string) bool {
	_, ok := m.providers[name]
	return ok
}

func (m *merger) isAccepted(id string) bool {
	_, ok := m.accepted[id]
	return ok
}

// effectiveProviders returns the provider set in the order it was built.
func (m *merger) effectiveProviders() []string {
	return append([]string{}, m.order...)
}

// result returns the accepted candidates ordered by date, keeping arrival
// order within a date.
func (m *merger) result() []domain.FlightCandidate {
	out := make([]domain.FlightCandidate, len(m.candidates))
	copy(out, m.candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
