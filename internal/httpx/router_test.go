package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AngelCh415/ROI_GO/internal/calculator"
	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/metrics"
)

func newTestRouter() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc := calculator.NewService(log, metrics.NewRecorder(reg), inputs.Defaults())
	return NewRouter(log, svc, reg)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, r))
	return rr
}

func TestHealth(t *testing.T) {
	h := newTestRouter()
	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := do(t, h, http.MethodGet, path, ""); rr.Code != 200 {
			t.Fatalf("%s: expected 200, got %d", path, rr.Code)
		}
	}
}

func TestCatalogEndpoint(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodGet, "/v1/inputs", "")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Fields []struct {
			Key     string  `json:"key"`
			Default float64 `json:"default"`
			Display string  `json:"display"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Fields) != 14 || body.Fields[0].Key != "totalMonthlyInteractions" || body.Fields[0].Display != "500#" {
		t.Fatalf("unexpected catalog: %+v", body.Fields)
	}
}

func TestPostROI(t *testing.T) {
	rr := do(t, newTestRouter(), http.MethodPost, "/v1/roi", `{"aiMonthlyCost": 0, "aiSetupFee": 0}`)
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Results map[string]any `json:"results"`
		Report  struct {
			Headline struct {
				AnnualROI string `json:"annualROI"`
				Payback   string `json:"payback"`
			} `json:"headline"`
		} `json:"report"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if v, ok := body.Results["monthlyROI"]; !ok || v != nil {
		t.Fatalf("expected monthlyROI null, got %v (present=%v)", v, ok)
	}
	if body.Report.Headline.AnnualROI != "∞%" || body.Report.Headline.Payback != "Immediate" {
		t.Fatalf("unexpected headline: %+v", body.Report.Headline)
	}
}

func TestPostROIErrors(t *testing.T) {
	h := newTestRouter()

	rr := do(t, h, http.MethodPost, "/v1/roi", `{"aiAutonomyRate": 150}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &er); err != nil {
		t.Fatal(err)
	}
	if er.Error != "invalid inputs" || er.Details == nil {
		t.Fatalf("unexpected error body: %+v", er)
	}

	if rr := do(t, h, http.MethodPost, "/v1/roi", `{"aiAutonomyRate":`); rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", rr.Code)
	}
}

func TestGetROIFromQuery(t *testing.T) {
	h := newTestRouter()

	rr := do(t, h, http.MethodGet, "/v1/roi?totalMonthlyInteractions=1000", "")
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), `"totalMonthlyInteractions": 1000`) {
		t.Fatalf("unexpected response %d: %s", rr.Code, rr.Body.String())
	}
	if rr := do(t, h, http.MethodGet, "/v1/roi?aiSetupFee=lots", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric value, got %d", rr.Code)
	}
}

func TestReportFormats(t *testing.T) {
	h := newTestRouter()

	rr := do(t, h, http.MethodGet, "/v1/roi/report", "")
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), `"annualTotalGain": "$29,827"`) {
		t.Fatalf("unexpected json report %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/v1/roi/report.html", "")
	if rr.Code != 200 || !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html") || !strings.Contains(rr.Body.String(), "<table>") {
		t.Fatalf("unexpected html report %d: %s", rr.Code, rr.Header().Get("Content-Type"))
	}

	rr = do(t, h, http.MethodGet, "/v1/roi/report.md", "")
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "## Key Insights & Annual Projections") {
		t.Fatalf("unexpected markdown report %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter()
	do(t, h, http.MethodGet, "/v1/roi", "")
	do(t, h, http.MethodGet, "/v1/roi?aiAutonomyRate=-1", "")

	rr := do(t, h, http.MethodGet, "/metrics", "")
	body := rr.Body.String()
	for _, want := range []string{"roi_computations_total 1", "roi_validation_failures_total 1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}
