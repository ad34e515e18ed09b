package store

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/standings-service/internal/datasource"
	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/domain/teams"
)

var (
	// ErrDuplicateTeam is returned when two teams share a code.
	ErrDuplicateTeam = errors.New("duplicate team code")
	// ErrDanglingTeam is returned when a standing references an unknown team code.
	ErrDanglingTeam = errors.New("standing references unknown team")
)

// MemoryStore holds the team and standing collections. It is built once and never
// modified, so concurrent readers need no locking.
type MemoryStore struct {
	teams     []teams.Team
	byCode    map[string]teams.Team
	standings []standings.Standing
}

// Load reads both collections from src and builds a MemoryStore.
func Load(src datasource.Source) (*MemoryStore, error) {
	if src == nil {
		return nil, errors.New("data source not configured")
	}
	teamItems, err := src.LoadTeams()
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	standingItems, err := src.LoadStandings()
	if err != nil {
		return nil, fmt.Errorf("load standings: %w", err)
	}
	return NewMemoryStore(teamItems, standingItems)
}

// NewMemoryStore copies the given collections and checks that team codes are unique
// and that every standing resolves to a team.
func NewMemoryStore(teamItems []teams.Team, standingItems []standings.Standing) (*MemoryStore, error) {
	if problems := Verify(teamItems, standingItems); len(problems) > 0 {
		return nil, problems[0]
	}

	byCode := make(map[string]teams.Team, len(teamItems))
	for _, t := range teamItems {
		byCode[t.Code] = t
	}

	return &MemoryStore{
		teams:     append([]teams.Team(nil), teamItems...),
		byCode:    byCode,
		standings: append([]standings.Standing(nil), standingItems...),
	}, nil
}

// ListTeams returns a copy of the teams in load order.
func (s *MemoryStore) ListTeams() []teams.Team {
	return append([]teams.Team(nil), s.teams...)
}

// GetTeam retrieves a team by code.
func (s *MemoryStore) GetTeam(code string) (teams.Team, bool) {
	t, ok := s.byCode[code]
	return t, ok
}

// ListStandings returns a copy of the standings in load order.
func (s *MemoryStore) ListStandings() []standings.Standing {
	return append([]standings.Standing(nil), s.standings...)
}

// Verify returns every duplicate team code and every dangling team reference, in
// input order. A nil result means the collections can be joined.
func Verify(teamItems []teams.Team, standingItems []standings.Standing) []error {
	var problems []error
	codes := make(map[string]struct{}, len(teamItems))
	for _, t := range teamItems {
		if _, ok := codes[t.Code]; ok {
			problems = append(problems, fmt.Errorf("%w: %s", ErrDuplicateTeam, t.Code))
			continue
		}
		codes[t.Code] = struct{}{}
	}
	for i, s := range standingItems {
		if _, ok := codes[s.Team]; !ok {
			problems = append(problems, fmt.Errorf("%w: standing %d references %q", ErrDanglingTeam, i, s.Team))
		}
	}
	return problems
}
