package standings

// Navigation is the year > league > division tree shown on the home page.
// Entries keep the order in which they first appear in the standings.
type Navigation struct {
	Years []YearNode
}

// YearNode groups the leagues that have standings in a year.
type YearNode struct {
	Year    string
	Leagues []LeagueNode
}

// LeagueNode groups the divisions of a league within a year.
type LeagueNode struct {
	League    string
	Divisions []string
}

// BuildNavigation derives the navigation tree from the full standings collection.
func BuildNavigation(all []Standing) Navigation {
	var nav Navigation
	yearIdx := make(map[string]int)
	leagueIdx := make(map[[2]string]int)
	seenDivision := make(map[[3]string]struct{})

	for _, s := range all {
		yi, ok := yearIdx[s.Year]
		if !ok {
			yi = len(nav.Years)
			yearIdx[s.Year] = yi
			nav.Years = append(nav.Years, YearNode{Year: s.Year})
		}
		year := &nav.Years[yi]

		lk := [2]string{s.Year, s.League}
		li, ok := leagueIdx[lk]
		if !ok {
			li = len(year.Leagues)
			leagueIdx[lk] = li
			year.Leagues = append(year.Leagues, LeagueNode{League: s.League})
		}
		league := &year.Leagues[li]

		dk := [3]string{s.Year, s.League, s.Division}
		if _, ok := seenDivision[dk]; ok {
			continue
		}
		seenDivision[dk] = struct{}{}
		league.Divisions = append(league.Divisions, s.Division)
	}
	return nav
}

// Distinct returns the distinct years, leagues and divisions in first-seen order.
func Distinct(all []Standing) (years, leagues, divisions []string) {
	years = distinct(all, func(s Standing) string { return s.Year })
	leagues = distinct(all, func(s Standing) string { return s.League })
	divisions = distinct(all, func(s Standing) string { return s.Division })
	return years, leagues, divisions
}

func distinct(all []Standing, key func(Standing) string) []string {
	seen := make(map[string]struct{}, len(all))
	var out []string
	for _, s := range all {
		k := key(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
