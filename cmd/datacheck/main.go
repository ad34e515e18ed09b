// Command datacheck validates teams.json and standings.json and reports every
// integrity problem it finds. It exits 1 when the data cannot be served.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/datasource"
	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg := config.Load()

	flags := flag.NewFlagSet("datacheck", flag.ContinueOnError)
	flags.SetOutput(out)
	dir := flags.String("dir", cfg.DataDir, "directory holding teams.json and standings.json (empty: embedded data)")
	format := flags.String("log-format", cfg.LogFormat, "log format: text or json")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  *format,
		Service: "datacheck",
		Output:  out,
	})

	var src *datasource.FSSource
	if *dir != "" {
		src = datasource.NewDir(*dir)
	} else {
		src = datasource.NewEmbedded()
	}
	logger = logger.With(slog.String(logging.FieldSource, src.Name()))

	return check(src, logger)
}

func check(src datasource.Source, logger *slog.Logger) int {
	teamItems, teamsErr := src.LoadTeams()
	if teamsErr != nil {
		logging.Error(logger, "teams failed to load", teamsErr)
	}
	standingItems, standingsErr := src.LoadStandings()
	if standingsErr != nil {
		logging.Error(logger, "standings failed to load", standingsErr)
	}
	if teamsErr != nil || standingsErr != nil {
		return 1
	}

	problems := store.Verify(teamItems, standingItems)
	for _, p := range problems {
		logging.Error(logger, "integrity problem", p)
	}
	if len(problems) > 0 {
		logging.Warn(logger, "data check failed", slog.Int(logging.FieldCount, len(problems)))
		return 1
	}

	years, leagues, divisions := standings.Distinct(standingItems)
	logging.Info(logger, "data check passed",
		slog.Int("teams", len(teamItems)),
		slog.Int("standings", len(standingItems)),
		slog.Int("years", len(years)),
		slog.Int("leagues", len(leagues)),
		slog.Int("divisions", len(divisions)),
		slog.String("seasons", fmt.Sprint(years)),
	)
	return 0
}
