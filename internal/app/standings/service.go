package standings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/domain/teams"
)

// ErrTeamNotFound means a standing references a team code the store does not hold.
var ErrTeamNotFound = errors.New("team not found for standing")

// Store defines the read contract the standings service needs.
type Store interface {
	ListStandings() []standings.Standing
	GetTeam(code string) (teams.Team, bool)
}

// Service filters, orders and joins standings.
type Service struct {
	store Store
	nav   standings.Navigation
}

// NewService constructs a Service and derives the navigation tree once.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		nav:   standings.BuildNavigation(store.ListStandings()),
	}
}

// Navigation returns the year/league/division tree for the home page.
func (s *Service) Navigation() standings.Navigation {
	return s.nav
}

// Query returns the standings matching f, ordered by wins descending with ties kept
// in load order, each joined with its team. No match yields an empty slice.
func (s *Service) Query(ctx context.Context, f standings.Filter) ([]standings.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []standings.Standing
	for _, st := range s.store.ListStandings() {
		if f.Matches(st) {
			matched = append(matched, st)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Wins > matched[j].Wins
	})

	rows := make([]standings.Row, 0, len(matched))
	for _, st := range matched {
		team, ok := s.store.GetTeam(st.Team)
		if !ok {
			return nil, fmt.Errorf("%w: %q (%s %s %s)", ErrTeamNotFound, st.Team, st.Year, st.League, st.Division)
		}
		rows = append(rows, standings.NewRow(st, team))
	}
	return rows, nil
}
