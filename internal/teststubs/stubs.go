package teststubs

import (
	"sync/atomic"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/domain/teams"
)

// StubSource is a test double for datasource.Source.
type StubSource struct {
	Teams        []teams.Team
	Standings    []standings.Standing
	TeamsErr     error
	StandingsErr error
	Calls        atomic.Int32
}

// LoadTeams returns the configured teams and error while tracking calls.
func (s *StubSource) LoadTeams() ([]teams.Team, error) {
	s.Calls.Add(1)
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return append([]teams.Team(nil), s.Teams...), nil
}

// LoadStandings returns the configured standings and error while tracking calls.
func (s *StubSource) LoadStandings() ([]standings.Standing, error) {
	s.Calls.Add(1)
	if s.StandingsErr != nil {
		return nil, s.StandingsErr
	}
	return append([]standings.Standing(nil), s.Standings...), nil
}

// Name identifies the stub in logs.
func (s *StubSource) Name() string {
	return "stub"
}
