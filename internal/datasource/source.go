package datasource

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/domain/teams"
)

const (
	teamsFile     = "teams.json"
	standingsFile = "standings.json"
)

//go:embed data/*.json
var embedded embed.FS

// Source defines how the static team and standing collections are loaded.
type Source interface {
	LoadTeams() ([]teams.Team, error)
	LoadStandings() ([]standings.Standing, error)
}

// FSSource reads teams.json and standings.json from the root of a filesystem.
type FSSource struct {
	fsys      fs.FS
	name      string
	validator *Validator
}

// NewEmbedded returns a source backed by the data compiled into the binary.
func NewEmbedded() *FSSource {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return NewFS(sub, "embedded")
}

// NewDir returns a source rooted at a directory on disk.
func NewDir(dir string) *FSSource {
	return NewFS(os.DirFS(dir), dir)
}

// NewFS returns a source over an arbitrary filesystem; name is used in error messages.
func NewFS(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name, validator: NewValidator()}
}

// Name describes where the data comes from.
func (s *FSSource) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// LoadTeams decodes and validates the team collection.
func (s *FSSource) LoadTeams() ([]teams.Team, error) {
	var items []teams.Team
	if err := s.decode(teamsFile, &items); err != nil {
		return nil, err
	}
	for i, t := range items {
		if err := s.validator.Validate(t); err != nil {
			return nil, fmt.Errorf("%s: team %d (%q): %w", teamsFile, i, t.Code, err)
		}
	}
	return items, nil
}

// LoadStandings decodes and validates the standing collection. Every record must
// carry all six fields; a missing wins or losses value is not read as zero.
func (s *FSSource) LoadStandings() ([]standings.Standing, error) {
	var raw []rawStanding
	if err := s.decode(standingsFile, &raw); err != nil {
		return nil, err
	}
	items := make([]standings.Standing, 0, len(raw))
	for i, r := range raw {
		if err := s.validator.Validate(r); err != nil {
			return nil, fmt.Errorf("%s: standing %d (%q): %w", standingsFile, i, r.Team, err)
		}
		items = append(items, r.standing())
	}
	return items, nil
}

func (s *FSSource) decode(file string, payload any) error {
	if s == nil || s.fsys == nil {
		return errors.New("data source not configured")
	}
	f, err := s.fsys.Open(file)
	if err != nil {
		return fmt.Errorf("open %s from %s: %w", file, s.name, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("decode %s from %s: %w", file, s.name, err)
	}
	return nil
}

// rawStanding mirrors the JSON shape with pointer counts so absent fields are detectable.
type rawStanding struct {
	Year     string `json:"year" validate:"required"`
	League   string `json:"league" validate:"required"`
	Division string `json:"division" validate:"required"`
	Team     string `json:"team" validate:"required"`
	Wins     *int   `json:"wins" validate:"required,gte=0"`
	Losses   *int   `json:"losses" validate:"required,gte=0"`
}

func (r rawStanding) standing() standings.Standing {
	return standings.Standing{
		Year:     r.Year,
		League:   r.League,
		Division: r.Division,
		Team:     r.Team,
		Wins:     *r.Wins,
		Losses:   *r.Losses,
	}
}
