package datasource_test

import (
	"net/http"
	"testing"
	"testing/fstest"

	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	appteams "github.com/preston-bernstein/standings-service/internal/app/teams"
	"github.com/preston-bernstein/standings-service/internal/datasource"
	httpserver "github.com/preston-bernstein/standings-service/internal/http"
	"github.com/preston-bernstein/standings-service/internal/http/handlers"
	"github.com/preston-bernstein/standings-service/internal/store"
	"github.com/preston-bernstein/standings-service/internal/testutil"
)

func TestMinimalDataSetLoadsAndServes(t *testing.T) {
	src := datasource.NewFS(fstest.MapFS{
		"teams.json":     {Data: []byte(`[{"code":"T1","city":"C","name":"N","logo":"L"}]`)},
		"standings.json": {Data: []byte(`[{"year":"2022","league":"A","division":"X","team":"T1","wins":10,"losses":2}]`)},
	}, "minimal")

	ms, err := store.Load(src)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	h := handlers.NewHandler(appteams.NewService(ms), appstandings.NewService(ms), nil, nil, nil)
	router := httpserver.NewRouter(h)

	rr := testutil.Serve(router, http.MethodGet, "/standings/2022/A/X", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr,
		`<img height="75" src="L"/>`,
		"<td>C</td>", "<td>N</td>", "<td>10</td>", "<td>2</td>",
	)

	rr = testutil.Serve(router, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr, `src="L"`)
}
