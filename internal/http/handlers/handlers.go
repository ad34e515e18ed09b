package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	appteams "github.com/preston-bernstein/standings-service/internal/app/teams"
	"github.com/preston-bernstein/standings-service/internal/domain/standings"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/render"
)

const (
	pageHome      = "home"
	pageTeams     = "teams"
	pageStandings = "standings"

	standingsPrefix = "/standings"
)

var (
	teamColumns     = []string{"logo", "city", "name", "code"}
	standingColumns = []string{"logo", "city", "name", "wins", "losses"}
)

// Handler serves the HTML pages.
type Handler struct {
	teams     *appteams.Service
	standings *appstandings.Service
	renderer  *render.Renderer
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewHandler constructs a Handler. logger and recorder may be nil.
func NewHandler(teamSvc *appteams.Service, standingSvc *appstandings.Service, renderer *render.Renderer, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	if renderer == nil {
		renderer = render.New()
	}
	return &Handler{
		teams:     teamSvc,
		standings: standingSvc,
		renderer:  renderer,
		logger:    logger,
		metrics:   recorder,
	}
}

// ServeHTTP dispatches on the raw request path. Empty segments reach Standings
// as written, without the cleaning and redirects a ServeMux applies.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := r.URL.Path
	switch {
	case path == "" || path == "/":
		h.Home(w, r)
	case path == "/teams":
		h.Teams(w, r)
	case path == standingsPrefix || strings.HasPrefix(path, standingsPrefix+"/"):
		h.Standings(w, r)
	default:
		writeNotFound(w)
	}
}

// Home renders the landing page with links to every standings view.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r) {
		return
	}
	if r.URL.Path != "" && r.URL.Path != "/" {
		writeNotFound(w)
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err := h.renderer.Home(&buf, h.standings.Navigation())
	h.metrics.RecordPageRender(pageHome, 0, time.Since(start), err)
	h.respond(w, r, pageHome, &buf, err)
}

// Teams renders every team as a table.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r) {
		return
	}

	start := time.Now()
	items := h.teams.Teams()
	var buf bytes.Buffer
	err := h.renderer.List(&buf, "Teams", render.Records(items), teamColumns)
	h.metrics.RecordPageRender(pageTeams, len(items), time.Since(start), err)
	h.respond(w, r, pageTeams, &buf, err)
}

// Standings renders the standings selected by /standings/{year}[/{league}[/{division}]].
// A missing year or an empty result is a 404.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	filter, ok := standings.FilterFromSegments(standings.SplitPath(r.URL.Path, standingsPrefix))
	if !ok {
		writeNotFound(w)
		return
	}

	start := time.Now()
	rows, err := h.standings.Query(r.Context(), filter)
	if err != nil {
		h.metrics.RecordPageRender(pageStandings, 0, time.Since(start), err)
		logging.Error(logger, "standings query failed", err, logging.FieldFilter, filter.Title())
		writeError(w, nethttp.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		logging.Debug(logger, "no standings matched", logging.FieldFilter, filter.Title())
		writeNotFound(w)
		return
	}

	var buf bytes.Buffer
	err = h.renderer.List(&buf, filter.Title(), render.Records(rows), standingColumns)
	h.metrics.RecordPageRender(pageStandings, len(rows), time.Since(start), err)
	h.respond(w, r, pageStandings, &buf, err)
}

// Health reports liveness for the ops listener.
func Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowRead(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, logging.FromContext(r.Context(), nil))
}

func (h *Handler) respond(w nethttp.ResponseWriter, r *nethttp.Request, page string, buf *bytes.Buffer, err error) {
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "page render failed", err, logging.FieldPage, page)
		writeError(w, nethttp.StatusInternalServerError)
		return
	}
	writeHTML(w, nethttp.StatusOK, buf.Bytes(), loggerFromContext(r, h.logger))
}
