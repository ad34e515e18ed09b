package standings

import (
	"reflect"
	"testing"
)

func sampleStandings() []Standing {
	return []Standing{
		{Year: "2022", League: "AL", Division: "East", Team: "NYY", Wins: 99, Losses: 63},
		{Year: "2022", League: "AL", Division: "West", Team: "HOU", Wins: 106, Losses: 56},
		{Year: "2022", League: "NL", Division: "West", Team: "LAD", Wins: 111, Losses: 51},
		{Year: "2021", League: "NL", Division: "West", Team: "SF", Wins: 107, Losses: 55},
		{Year: "2022", League: "AL", Division: "East", Team: "TOR", Wins: 92, Losses: 70},
		{Year: "2021", League: "AL", Division: "East", Team: "TB", Wins: 100, Losses: 62},
	}
}

func TestBuildNavigationFirstSeenOrder(t *testing.T) {
	nav := BuildNavigation(sampleStandings())

	want := Navigation{Years: []YearNode{
		{Year: "2022", Leagues: []LeagueNode{
			{League: "AL", Divisions: []string{"East", "West"}},
			{League: "NL", Divisions: []string{"West"}},
		}},
		{Year: "2021", Leagues: []LeagueNode{
			{League: "NL", Divisions: []string{"West"}},
			{League: "AL", Divisions: []string{"East"}},
		}},
	}}

	if !reflect.DeepEqual(nav, want) {
		t.Fatalf("unexpected navigation:\n got %+v\nwant %+v", nav, want)
	}
}

func TestBuildNavigationEmpty(t *testing.T) {
	if nav := BuildNavigation(nil); len(nav.Years) != 0 {
		t.Fatalf("expected empty navigation, got %+v", nav)
	}
}

func TestDistinct(t *testing.T) {
	years, leagues, divisions := Distinct(sampleStandings())
	if !reflect.DeepEqual(years, []string{"2022", "2021"}) {
		t.Fatalf("unexpected years %v", years)
	}
	if !reflect.DeepEqual(leagues, []string{"AL", "NL"}) {
		t.Fatalf("unexpected leagues %v", leagues)
	}
	if !reflect.DeepEqual(divisions, []string{"East", "West"}) {
		t.Fatalf("unexpected divisions %v", divisions)
	}
}
