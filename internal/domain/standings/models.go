package standings

import (
	"strconv"

	"github.com/preston-bernstein/standings-service/internal/domain/teams"
)

// Column keys a Row exposes to the page renderer.
const (
	FieldYear     = "year"
	FieldLeague   = "league"
	FieldDivision = "division"
	FieldTeam     = "team"
	FieldWins     = "wins"
	FieldLosses   = "losses"
)

// Standing is one team's win/loss record within a year, league and division.
type Standing struct {
	Year     string `json:"year"`
	League   string `json:"league"`
	Division string `json:"division"`
	Team     string `json:"team"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

// Row is a Standing joined with its Team for display. Rows are built per request
// so the shared standings are never modified.
type Row struct {
	Standing
	Logo string `json:"logo"`
	City string `json:"city"`
	Name string `json:"name"`
}

// NewRow joins a standing with the team it references.
func NewRow(s Standing, t teams.Team) Row {
	return Row{
		Standing: s,
		Logo:     t.Logo,
		City:     t.City,
		Name:     t.Name,
	}
}

// Field returns the value for a column key.
func (r Row) Field(key string) (string, bool) {
	switch key {
	case FieldYear:
		return r.Year, true
	case FieldLeague:
		return r.League, true
	case FieldDivision:
		return r.Division, true
	case FieldTeam, teams.FieldCode:
		return r.Team, true
	case FieldWins:
		return strconv.Itoa(r.Wins), true
	case FieldLosses:
		return strconv.Itoa(r.Losses), true
	case teams.FieldLogo:
		return r.Logo, true
	case teams.FieldCity:
		return r.City, true
	case teams.FieldName:
		return r.Name, true
	default:
		return "", false
	}
}
