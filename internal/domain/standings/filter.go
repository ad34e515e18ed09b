package standings

import "strings"

// Filter narrows standings by year and, optionally, league and division.
// An empty League or Division matches any value.
type Filter struct {
	Year     string
	League   string
	Division string
}

// FilterFromSegments builds a Filter from the path segments that follow "standings".
// The year is required; ok is false when it is missing. Segments past the division
// are ignored, and empty league or division segments count as absent.
func FilterFromSegments(segments []string) (Filter, bool) {
	if len(segments) == 0 || segments[0] == "" {
		return Filter{}, false
	}
	f := Filter{Year: segments[0]}
	if len(segments) > 1 {
		f.League = segments[1]
	}
	if len(segments) > 2 {
		f.Division = segments[2]
	}
	return f, true
}

// SplitPath splits a request path below prefix into segments, dropping trailing slashes.
func SplitPath(path, prefix string) []string {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.TrimRight(strings.TrimPrefix(rest, "/"), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// Matches reports whether s satisfies the filter.
func (f Filter) Matches(s Standing) bool {
	if s.Year != f.Year {
		return false
	}
	if f.League != "" && s.League != f.League {
		return false
	}
	if f.Division != "" && s.Division != f.Division {
		return false
	}
	return true
}

// Title is the page heading for the filtered standings.
func (f Filter) Title() string {
	title := "Standings - " + f.Year
	if f.League != "" {
		title += " - " + f.League
	}
	if f.Division != "" {
		title += " - " + f.Division
	}
	return title
}
