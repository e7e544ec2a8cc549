package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/roi"
)

func defaultReport() Report {
	in := inputs.Defaults()
	return Build(in, roi.Compute(in))
}

func contains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestBuildHeadline(t *testing.T) {
	r := defaultReport()
	want := Headline{
		AnnualTotalGain:       "$29,827",
		AnnualROI:             "252%",
		Payback:               "1 month",
		AnnualCostSavings:     "$13,500",
		AnnualRevenueIncrease: "$16,327",
	}
	if r.Headline != want {
		t.Fatalf("unexpected headline:\n got %+v\nwant %+v", r.Headline, want)
	}
}

func TestBuildChartAndSections(t *testing.T) {
	r := defaultReport()
	if len(r.Chart) != 1 || !r.ShowNetBenefit {
		t.Fatalf("unexpected chart: %+v", r.Chart)
	}
	p := r.Chart[0]
	if p.CurrentHumanCost != 1750 || p.NetBenefit != 2485.546875 {
		t.Fatalf("unexpected chart point: %+v", p)
	}
	if len(r.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(r.Sections))
	}
	impact := r.Sections[0].Lines
	if impact[0].Value != "$1,125.00" || impact[1].Value != "+$1,360.55" || impact[2].Value != "$2,485.55" {
		t.Fatalf("unexpected impact lines: %+v", impact)
	}
	human := r.Sections[2].Lines
	if human[1].Value != "$21,000.00" || !strings.Contains(human[0].Note, "350 interactions") {
		t.Fatalf("unexpected human cost lines: %+v", human)
	}
	counts := r.Sections[3].Lines
	if counts[0].Value != "500" || counts[2].Value != "375" || counts[3].Value != "125" {
		t.Fatalf("unexpected interaction counts: %+v", counts)
	}
	if len(r.Annual) != 3 || r.Annual[2].Value != "$29,826.56" {
		t.Fatalf("unexpected annual lines: %+v", r.Annual)
	}
	if len(r.Benefits) != 10 {
		t.Fatalf("expected 10 qualitative benefits, got %d", len(r.Benefits))
	}
}

func TestInsightsDefault(t *testing.T) {
	r := defaultReport()
	for _, want := range []string{
		"total monthly gain of $2,485.55",
		"setup fee of $2,500) is estimated to be paid back within 1 month",
		"15% higher booking rate",
		"Automating 75% of interactions generates $1,125.00",
		"potential ROI of 252%",
		"Don't Forget Speed",
	} {
		if !contains(r.Insights, want) {
			t.Fatalf("missing insight %q in %v", want, r.Insights)
		}
	}
	if contains(r.Insights, "effectively infinite") || contains(r.Insights, "effectively immediate") {
		t.Fatalf("unexpected sentinel insight: %v", r.Insights)
	}
}

func TestInsightsFreeAgent(t *testing.T) {
	in := inputs.Defaults()
	in.AIMonthlyCost = 0
	in.AISetupFee = 0
	r := Build(in, roi.Compute(in))

	if r.Headline.AnnualROI != "∞%" || r.Headline.Payback != "Immediate" {
		t.Fatalf("unexpected headline: %+v", r.Headline)
	}
	if !contains(r.Insights, "effectively infinite") || !contains(r.Insights, "effectively immediate") {
		t.Fatalf("missing sentinel insights: %v", r.Insights)
	}
	if contains(r.Insights, "potential ROI of") {
		t.Fatalf("finite ROI sentence should be absent: %v", r.Insights)
	}
}

func TestInsightsNoGain(t *testing.T) {
	in := inputs.Defaults()
	in.AIAutonomyRate = 0
	in.AIBookingRateImprovement = 0
	in.AIShowRateImprovement = 0
	r := Build(in, roi.Compute(in))

	if r.ShowNetBenefit || r.Chart[0].NetBenefit != 0 {
		t.Fatalf("net benefit should be hidden: %+v", r.Chart)
	}
	if r.Headline.Payback != "Never" || r.Headline.AnnualROI != "-100%" {
		t.Fatalf("unexpected headline: %+v", r.Headline)
	}
	if !contains(r.Insights, "not projected to be paid back") {
		t.Fatalf("missing never-paid-back insight: %v", r.Insights)
	}
	if contains(r.Insights, "higher booking rate") || contains(r.Insights, "labor savings") {
		t.Fatalf("zero-delta sentences should be absent: %v", r.Insights)
	}
	if len(r.Annual) != 1 {
		t.Fatalf("expected only the total annual line, got %+v", r.Annual)
	}
}

func TestInsightsNetLoss(t *testing.T) {
	res := models.Results{
		AIMonthlyLaborCostSavings: -200,
		TotalMonthlyGain:          -200,
		MonthlyROI:                -140,
		AnnualROI:                 -140,
		AIEffectiveMonthlyCostY1:  500,
		PaybackPeriod:             math.Inf(1),
	}
	r := Build(inputs.Defaults(), res)

	if r.Chart[0].NetBenefit != 0 {
		t.Fatalf("net benefit should be clamped at zero: %+v", r.Chart)
	}
	if !contains(r.Insights, "total monthly loss of $200.00") {
		t.Fatalf("missing loss insight: %v", r.Insights)
	}
	if !contains(r.Insights, "labor increased cost of $200.00") {
		t.Fatalf("missing increased cost insight: %v", r.Insights)
	}
	if r.Sections[0].Lines[2].Tone != Negative {
		t.Fatalf("expected negative tone, got %q", r.Sections[0].Lines[2].Tone)
	}
}

func TestAnnualROINonFinite(t *testing.T) {
	if got := AnnualROI(models.Results{AnnualROI: math.Inf(1), TotalMonthlyGain: 0}); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
	if got := AnnualROI(models.Results{AnnualROI: math.NaN(), TotalMonthlyGain: 5}); got != "∞%" {
		t.Fatalf("expected ∞%%, got %q", got)
	}
	if got := AnnualROI(models.Results{AnnualROI: -12.4}); got != "-12%" {
		t.Fatalf("expected -12%%, got %q", got)
	}
}

func TestRenderMarkdownAndHTML(t *testing.T) {
	r := defaultReport()

	var mdOut bytes.Buffer
	if err := RenderMarkdown(&mdOut, r); err != nil {
		t.Fatal(err)
	}
	text := mdOut.String()
	for _, want := range []string{"# Omnichannel AI Agent ROI Calculator", "**$29,827**", "| Net Benefit |", "## AI Agent Cost Breakdown"} {
		if !strings.Contains(text, want) {
			t.Fatalf("markdown missing %q", want)
		}
	}

	var htmlOut bytes.Buffer
	if err := RenderHTML(&htmlOut, r); err != nil {
		t.Fatal(err)
	}
	page := htmlOut.String()
	for _, want := range []string{"<!DOCTYPE html>", "<table>", "<h2>Monthly Interaction Analysis</h2>", "$29,827", "@media print"} {
		if !strings.Contains(page, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}
