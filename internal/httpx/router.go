package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/ROI_GO/internal/calculator"
	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/report"
	"github.com/AngelCh415/ROI_GO/internal/utils"
)

type router struct {
	log *slog.Logger
	svc *calculator.Service
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// FieldView is one slider with its default and display label.
type FieldView struct {
	inputs.Field
	Default float64 `json:"default"`
	Display string  `json:"display"`
}

type catalogResponse struct {
	Fields   []FieldView   `json:"fields"`
	Defaults models.Inputs `json:"defaults"`
}

func NewRouter(log *slog.Logger, svc *calculator.Service, gatherer prometheus.Gatherer) http.Handler {
	rt := &router{log: log, svc: svc}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux.Route("/v1", func(v1 chi.Router) {
		v1.Get("/inputs", rt.catalog)
		v1.Post("/roi", rt.evaluateBody)
		v1.Get("/roi", rt.evaluateQuery)
		v1.Get("/roi/report", rt.reportJSON)
		v1.Get("/roi/report.html", rt.reportHTML)
		v1.Get("/roi/report.md", rt.reportMarkdown)
	})

	return mux
}

func (rt *router) catalog(w http.ResponseWriter, r *http.Request) {
	def := rt.svc.Defaults()
	fields := inputs.Catalog()
	out := catalogResponse{Fields: make([]FieldView, 0, len(fields)), Defaults: def}
	for _, f := range fields {
		v := f.Value(def)
		out.Fields = append(out.Fields, FieldView{Field: f, Default: v, Display: inputs.FormatValue(f, v)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (rt *router) evaluateBody(w http.ResponseWriter, r *http.Request) {
	in, err := inputs.DecodeJSON(r.Body, rt.svc.Defaults())
	if err != nil {
		rt.fail(w, r, err)
		return
	}
	ev, err := rt.svc.Evaluate(r.Context(), in)
	if err != nil {
		rt.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (rt *router) evaluateQuery(w http.ResponseWriter, r *http.Request) {
	ev, ok := rt.fromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (rt *router) reportJSON(w http.ResponseWriter, r *http.Request) {
	ev, ok := rt.fromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ev.Report)
}

func (rt *router) reportHTML(w http.ResponseWriter, r *http.Request) {
	ev, ok := rt.fromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderHTML(w, ev.Report); err != nil {
		rt.log.Error("render html", slog.String("rid", utils.RID(r.Context())), slog.String("err", err.Error()))
	}
}

func (rt *router) reportMarkdown(w http.ResponseWriter, r *http.Request) {
	ev, ok := rt.fromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if err := report.RenderMarkdown(w, ev.Report); err != nil {
		rt.log.Error("render markdown", slog.String("rid", utils.RID(r.Context())), slog.String("err", err.Error()))
	}
}

// fromQuery overlays the query string on the defaults and evaluates it,
// writing the error reply itself when that fails.
func (rt *router) fromQuery(w http.ResponseWriter, r *http.Request) (calculator.Evaluation, bool) {
	in, err := inputs.FromQuery(r.URL.Query(), rt.svc.Defaults())
	if err == nil {
		var ev calculator.Evaluation
		if ev, err = rt.svc.Evaluate(r.Context(), in); err == nil {
			return ev, true
		}
	}
	rt.fail(w, r, err)
	return calculator.Evaluation{}, false
}

// fail maps an error to its status: bad input is 400, anything else 500.
func (rt *router) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *inputs.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid inputs", Details: verr.Fields})
	case errors.Is(err, inputs.ErrMalformed):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		rt.log.Error("request failed", slog.String("rid", utils.RID(r.Context())), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
