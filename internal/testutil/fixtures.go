package testutil

import (
	"testing"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/domain/teams"
	"github.com/preston-bernstein/standings-service/internal/store"
)

// SampleTeam returns a valid team fixture with the provided code.
func SampleTeam(code string) teams.Team {
	return teams.Team{
		Code: code,
		City: "City " + code,
		Name: "Name " + code,
		Logo: "https://example.com/logos/" + code + ".svg",
	}
}

// SampleTeams returns four teams, T1..T4.
func SampleTeams() []teams.Team {
	return []teams.Team{SampleTeam("T1"), SampleTeam("T2"), SampleTeam("T3"), SampleTeam("T4")}
}

// SampleStandings covers two years, two leagues and two divisions. T2 and T3 tie on
// wins in 2022/A so ordering tests can check stability.
func SampleStandings() []standings.Standing {
	return []standings.Standing{
		{Year: "2022", League: "A", Division: "X", Team: "T1", Wins: 10, Losses: 2},
		{Year: "2022", League: "A", Division: "X", Team: "T2", Wins: 6, Losses: 6},
		{Year: "2022", League: "A", Division: "Y", Team: "T3", Wins: 6, Losses: 6},
		{Year: "2022", League: "B", Division: "X", Team: "T4", Wins: 11, Losses: 1},
		{Year: "2021", League: "A", Division: "X", Team: "T2", Wins: 9, Losses: 3},
		{Year: "2021", League: "A", Division: "X", Team: "T1", Wins: 3, Losses: 9},
	}
}

// NewStore builds a MemoryStore from the given collections, failing the test on error.
func NewStore(t testing.TB, teamItems []teams.Team, standingItems []standings.Standing) *store.MemoryStore {
	t.Helper()
	ms, err := store.NewMemoryStore(teamItems, standingItems)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return ms
}

// NewSampleStore builds a MemoryStore from SampleTeams and SampleStandings.
func NewSampleStore(t testing.TB) *store.MemoryStore {
	t.Helper()
	return NewStore(t, SampleTeams(), SampleStandings())
}
