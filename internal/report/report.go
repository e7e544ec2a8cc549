// Package report binds derived results to the cards, chart series and
// narrative text of the calculator page.
package report

import (
	"fmt"
	"math"

	"github.com/AngelCh415/ROI_GO/internal/format"
	"github.com/AngelCh415/ROI_GO/internal/models"
)

const (
	Title    = "Omnichannel AI Agent ROI Calculator"
	Subtitle = "Estimate the Value of Automating Text-Based Customer Interactions"
)

// Tone tells the renderer how to color a figure.
type Tone string

const (
	Neutral  Tone = ""
	Positive Tone = "positive"
	Negative Tone = "negative"
)

type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
	Tone  Tone   `json:"tone,omitempty"`
}

type Section struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

type Headline struct {
	AnnualTotalGain       string `json:"annualTotalGain"`
	AnnualROI             string `json:"annualROI"`
	Payback               string `json:"payback"`
	AnnualCostSavings     string `json:"annualCostSavings"`
	AnnualRevenueIncrease string `json:"annualRevenueIncrease"`
}

type Benefit struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Report struct {
	Title          string              `json:"title"`
	Subtitle       string              `json:"subtitle"`
	Headline       Headline            `json:"headline"`
	Chart          []models.ChartPoint `json:"chart"`
	ShowNetBenefit bool                `json:"showNetBenefit"`
	Sections       []Section           `json:"sections"`
	Annual         []Line              `json:"annual"`
	Insights       []string            `json:"insights"`
	Benefits       []Benefit           `json:"benefits"`
}

// Chart is the single-group series of the monthly comparison bar chart.
// Net benefit never goes below zero.
func Chart(res models.Results) []models.ChartPoint {
	return []models.ChartPoint{{
		Name:              "Monthly",
		CurrentHumanCost:  res.HumanMonthlyInteractionCost,
		AICostEffectiveY1: res.AIEffectiveMonthlyCostY1,
		NetBenefit:        math.Max(res.TotalMonthlyGain, 0),
	}}
}

// AnnualROI renders the headline ROI; +Inf becomes "∞%" when there is gain.
func AnnualROI(res models.Results) string {
	if !math.IsInf(res.AnnualROI, 0) && !math.IsNaN(res.AnnualROI) {
		return format.Number(res.AnnualROI, format.Pct(0), format.FallbackNA)
	}
	if res.TotalMonthlyGain > 0 {
		return "∞%"
	}
	return string(format.FallbackNA)
}

// Build assembles the full page for one snapshot. in is needed for the
// narrative, which quotes some raw inputs back to the reader.
func Build(in models.Inputs, res models.Results) Report {
	return Report{
		Title:    Title,
		Subtitle: Subtitle,
		Headline: Headline{
			AnnualTotalGain:       format.Number(res.AnnualTotalGain, format.USD(0), format.FallbackZero),
			AnnualROI:             AnnualROI(res),
			Payback:               format.FormatPayback(res.PaybackPeriod),
			AnnualCostSavings:     format.Number(res.AnnualCostSavings, format.USD(0), format.FallbackZero),
			AnnualRevenueIncrease: format.Number(res.AnnualRevenueIncrease, format.USD(0), format.FallbackZero),
		},
		Chart:          Chart(res),
		ShowNetBenefit: res.TotalMonthlyGain > 0,
		Sections:       sections(in, res),
		Annual:         annual(res),
		Insights:       Insights(in, res),
		Benefits:       QualitativeBenefits(),
	}
}

func sections(in models.Inputs, res models.Results) []Section {
	count := func(v float64) string { return format.Number(v, format.Decimal(0), "0") }
	revenue := format.Money(res.AIMonthlyRevenueIncrease)
	if res.AIMonthlyRevenueIncrease >= 0 {
		revenue = "+" + revenue
	}

	return []Section{
		{
			Title: "Monthly Financial Impact (AI vs. Current)",
			Lines: []Line{
				{
					Label: "Direct Labor Cost Savings", Value: format.Money(res.AIMonthlyLaborCostSavings),
					Note: "Current Human Cost - Cost of Humans Handling AI Escalations",
					Tone: sign(res.AIMonthlyLaborCostSavings),
				},
				{
					Label: "Potential Added Revenue", Value: revenue,
					Note: "Est. Revenue from Improved Booking & Show-Up Rates",
					Tone: sign(res.AIMonthlyRevenueIncrease),
				},
				{
					Label: "Total Monthly Benefit", Value: format.Money(res.TotalMonthlyGain),
					Note: "Cost Savings + Added Revenue",
					Tone: sign(res.TotalMonthlyGain),
				},
			},
		},
		{
			Title: "AI Agent Cost Breakdown",
			Lines: []Line{
				{Label: "One-time Setup Fee", Value: format.Money(res.AISetupFee)},
				{Label: "Monthly Subscription/Service Cost", Value: format.Money(res.AITotalMonthlyCost)},
				{
					Label: "Effective Monthly Cost (Year 1)", Value: format.Money(res.AIEffectiveMonthlyCostY1),
					Note: "Monthly Recurring + Setup Fee/12",
				},
			},
		},
		{
			Title: "Calculated Human Agent Cost (Current)",
			Lines: []Line{
				{
					Label: "Est. Monthly Cost (Labor + Overhead)", Value: format.Money(res.HumanMonthlyInteractionCost),
					Note: fmt.Sprintf("Based on %s interactions handled by humans @ %s/hr & %s min/interaction",
						format.Number(res.HumanInteractionsMonthly, format.Decimal(0), format.FallbackZero),
						format.Money(in.AvgHumanAgentHourlyCost),
						format.Number(in.AvgTimePerInteractionByHuman, format.Decimal(1), format.FallbackZero)),
				},
				{Label: "Est. Annual Cost", Value: format.Money(res.HumanMonthlyInteractionCost * 12)},
			},
		},
		{
			Title: "Monthly Interaction Analysis",
			Lines: []Line{
				{Label: "Total Interactions Entered", Value: count(res.TotalMonthlyInteractions)},
				{Label: "Currently Handled by Humans", Value: count(res.HumanInteractionsMonthly)},
				{Label: "Est. Handled Autonomously by AI", Value: count(res.AIHandledInteractionsMonthly), Tone: Positive},
				{Label: "Est. Remaining for Humans (w/ AI)", Value: count(res.HumanInteractionsRemainingMonthly)},
			},
		},
	}
}

// annual lists the yearly projections; zero revenue or savings lines are left out.
func annual(res models.Results) []Line {
	var out []Line
	if res.AnnualRevenueIncrease != 0 {
		out = append(out, Line{
			Label: "Potential Annual Added Revenue", Value: format.Money(res.AnnualRevenueIncrease),
			Note: "Est. Revenue from Improved Funnel x 12", Tone: sign(res.AnnualRevenueIncrease),
		})
	}
	if res.AnnualCostSavings != 0 {
		out = append(out, Line{
			Label: "Potential Annual Labor Cost Savings", Value: format.Money(res.AnnualCostSavings),
			Note: "Savings from reduced human handling x 12", Tone: sign(res.AnnualCostSavings),
		})
	}
	return append(out, Line{
		Label: "Potential Annual Total Gain", Value: format.Money(res.AnnualTotalGain),
		Note: "Annual Labor Cost Savings + Annual Added Revenue", Tone: sign(res.AnnualTotalGain),
	})
}

func sign(v float64) Tone {
	if v >= 0 {
		return Positive
	}
	return Negative
}
