package teams

import "github.com/preston-bernstein/standings-service/internal/domain/teams"

// Store defines the read contract for teams.
type Store interface {
	ListTeams() []teams.Team
}

// Service serves the team listing from a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns every team in load order.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}
