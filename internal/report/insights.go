package report

import (
	"fmt"
	"math"

	"github.com/AngelCh415/ROI_GO/internal/format"
	"github.com/AngelCh415/ROI_GO/internal/models"
)

// Insights is the narrative list under "Key Insights & Annual Projections".
func Insights(in models.Inputs, res models.Results) []string {
	whole := func(v float64) string { return format.Number(v, format.Decimal(0), format.FallbackZero) }

	direction := "gain"
	if res.TotalMonthlyGain < 0 {
		direction = "loss"
	}
	out := []string{
		fmt.Sprintf("The AI Agent projects a total monthly %s of %s, combining labor savings and potential revenue increases.",
			direction, format.Money(math.Abs(res.TotalMonthlyGain))),
	}

	payback := res.PaybackPeriod
	switch {
	case payback > 0 && !math.IsInf(payback, 0):
		out = append(out, fmt.Sprintf("The initial investment (setup fee of %s) is estimated to be paid back within %s through the net monthly benefits.",
			format.Number(res.AISetupFee, format.USD(0), format.FallbackZero), format.FormatPayback(payback)))
	case math.IsInf(payback, 0) && res.TotalMonthlyGain <= 0:
		out = append(out, "Based on the current inputs, the initial investment is not projected to be paid back via net benefits.")
	case payback == 0:
		out = append(out, "With a positive net benefit and zero setup fee, the return is effectively immediate.")
	}

	if res.AIMonthlyRevenueIncrease != 0 {
		out = append(out, fmt.Sprintf("Improving the sales funnel (e.g., %s%% higher booking rate, %s%% higher show-up rate) is estimated to add %s in potential revenue each month. Faster response times can lift conversions further and are not included.",
			whole(in.AIBookingRateImprovement), whole(in.AIShowRateImprovement), format.Money(res.AIMonthlyRevenueIncrease)))
	}

	switch {
	case res.AIMonthlyLaborCostSavings > 0:
		out = append(out, fmt.Sprintf("Automating %s%% of interactions generates %s in monthly labor savings, more if it frees high-cost staff from routine messages.",
			whole(in.AIAutonomyRate), format.Money(res.AIMonthlyLaborCostSavings)))
	case res.AIMonthlyLaborCostSavings < 0:
		out = append(out, fmt.Sprintf("Automating %s%% of interactions shows a potential monthly labor increased cost of %s (ensure AI cost inputs are accurate).",
			whole(in.AIAutonomyRate), format.Money(math.Abs(res.AIMonthlyLaborCostSavings))))
	}

	out = append(out,
		"Don't Forget Speed: responding within 5 minutes can raise lead conversion many times over, and AI makes that instant engagement possible.",
		"Capture After-Hours Leads: inquiries arriving outside business hours are engaged immediately instead of going cold.",
	)

	roi := res.MonthlyROI
	switch {
	case !math.IsInf(roi, 0) && !math.IsNaN(roi) && roi != 0:
		out = append(out, fmt.Sprintf("This translates to a potential ROI of %s (monthly/annual rate), comparing the total monthly benefit to the effective AI cost (incl. amortized setup).",
			format.Number(roi, format.Pct(0), format.FallbackNA)))
	case math.IsInf(roi, 1):
		out = append(out, "With positive gains and zero effective cost, the ROI is effectively infinite.")
	}
	return out
}

// QualitativeBenefits are the operational advantages the numbers leave out.
func QualitativeBenefits() []Benefit {
	return []Benefit{
		{"Drastically Improved Response Time", "Engage leads in minutes, not hours; most customers choose the first business that answers."},
		{"24/7 Omnichannel Availability", "Engage every lead instantly over SMS, WhatsApp, email, social media and web chat."},
		{"Instant FAQ Resolution & Efficient Service", "Consistent answers to routine questions, freeing human agent time."},
		{"Boost Labor Efficiency & Reduce Costs", "Keep skilled staff on billable work instead of routine messages."},
		{"Efficient Appointment Scheduling & Reduced No-Shows", "Automated booking, rescheduling and reminders, with lead qualification built in."},
		{"Consistent Lead Engagement & Follow-up", "Systematic nurturing, since most sales need several follow-ups."},
		{"Automated Review Generation", "Ask satisfied customers for reviews to strengthen online reputation."},
		{"Seamless Human Handoff", "Route complex or high-intent conversations to the right person with context."},
		{"Scalability & Competitive Advantage", "Handle more interactions without growing headcount, lowering cost per acquisition."},
		{"Actionable Data & Insights", "Capture customer needs during conversations to qualify prospects."},
	}
}
