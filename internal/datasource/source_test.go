package datasource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func mapSource(teamsJSON, standingsJSON string) *FSSource {
	return NewFS(fstest.MapFS{
		teamsFile:     {Data: []byte(teamsJSON)},
		standingsFile: {Data: []byte(standingsJSON)},
	}, "test")
}

func TestEmbeddedDataLoads(t *testing.T) {
	src := NewEmbedded()

	items, err := src.LoadTeams()
	if err != nil {
		t.Fatalf("unexpected error loading teams: %v", err)
	}
	if len(items) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(items))
	}

	rows, err := src.LoadStandings()
	if err != nil {
		t.Fatalf("unexpected error loading standings: %v", err)
	}
	if len(rows) != 60 {
		t.Fatalf("expected 60 standings, got %d", len(rows))
	}
	if src.Name() != "embedded" {
		t.Fatalf("expected embedded source name, got %q", src.Name())
	}
}

func TestLoadTeamsAcceptsRelativeLogos(t *testing.T) {
	src := mapSource(`[
  {"code":"T1","city":"C","name":"N","logo":"L"},
  {"code":"T2","city":"C","name":"N","logo":"/img/t2.png"},
  {"code":"T3","city":"C","name":"N","logo":"https://example.com/t3.svg"}
]`, `[]`)

	items, err := src.LoadTeams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 || items[0].Logo != "L" || items[1].Logo != "/img/t2.png" {
		t.Fatalf("expected logos kept verbatim, got %+v", items)
	}
}

func TestLoadTeamsRejectsEmptyLogo(t *testing.T) {
	src := mapSource(`[{"code":"T1","city":"C","name":"N","logo":""}]`, `[]`)

	if _, err := src.LoadTeams(); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestLoadTeamsRejectsMissingField(t *testing.T) {
	src := mapSource(`[{"code":"T1","name":"N","logo":"https://example.com/t1.png"}]`, `[]`)

	if _, err := src.LoadTeams(); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestLoadStandingsKeepsZeroWins(t *testing.T) {
	src := mapSource(`[]`, `[{"year":"2022","league":"A","division":"X","team":"T1","wins":0,"losses":5}]`)

	rows, err := src.LoadStandings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Wins != 0 || rows[0].Losses != 5 {
		t.Fatalf("unexpected standings %+v", rows)
	}
}

func TestLoadStandingsRejectsMissingWins(t *testing.T) {
	src := mapSource(`[]`, `[{"year":"2022","league":"A","division":"X","team":"T1","losses":5}]`)

	if _, err := src.LoadStandings(); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestLoadStandingsRejectsNegativeLosses(t *testing.T) {
	src := mapSource(`[]`, `[{"year":"2022","league":"A","division":"X","team":"T1","wins":1,"losses":-1}]`)

	if _, err := src.LoadStandings(); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestLoadReportsDecodeErrors(t *testing.T) {
	src := mapSource(`{`, `[]`)
	if _, err := src.LoadTeams(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewDirReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, teamsFile), []byte(`[{"code":"T1","city":"C","name":"N","logo":"https://example.com/t1.png"}]`), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}

	src := NewDir(dir)
	items, err := src.LoadTeams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Code != "T1" {
		t.Fatalf("unexpected teams %+v", items)
	}
	if _, err := src.LoadStandings(); err == nil {
		t.Fatalf("expected error for missing standings file")
	}
}

func TestNilSourceErrors(t *testing.T) {
	var src *FSSource
	if _, err := src.LoadTeams(); err == nil {
		t.Fatalf("expected error from nil source")
	}
}
