// Package roi derives the before/after AI agent comparison from one input snapshot.
package roi

import (
	"math"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

const monthsPerYear = 12

// Compute maps a snapshot of inputs to the full set of derived figures.
// It never fails; the only non-finite outputs are MonthlyROI/AnnualROI
// (+Inf when there is gain at zero cost) and PaybackPeriod (+Inf = never).
func Compute(in models.Inputs) models.Results {
	hoursPerInteraction := in.AvgTimePerInteractionByHuman / 60

	// current funnel
	humanInteractions := in.TotalMonthlyInteractions * pct(in.PercentInteractionsHuman)
	humanCost := humanInteractions * hoursPerInteraction * in.AvgHumanAgentHourlyCost
	qualified := in.TotalMonthlyInteractions * pct(in.CurrentLeadQualificationRate)
	booked := qualified * pct(in.CurrentAppointmentBookingRate)
	attended := booked * pct(in.AppointmentShowUpRate)
	sales := attended * pct(in.AppointmentToSaleRate)
	revenue := sales * in.AvgRevenuePerSale

	// projected funnel; qualification and close rates are assumed unchanged
	aiHandled := in.TotalMonthlyInteractions * pct(in.AIAutonomyRate)
	humanRemaining := in.TotalMonthlyInteractions * (1 - pct(in.AIAutonomyRate))
	aiHumanCost := humanRemaining * hoursPerInteraction * in.AvgHumanAgentHourlyCost
	laborSavings := humanCost - aiHumanCost

	aiQualified := qualified
	aiBookingRate := in.CurrentAppointmentBookingRate * (1 + pct(in.AIBookingRateImprovement))
	aiBooked := aiQualified * pct(aiBookingRate)
	aiShowUpRate := math.Min(100, in.AppointmentShowUpRate*(1+pct(in.AIShowRateImprovement)))
	aiAttended := aiBooked * pct(aiShowUpRate)
	aiSales := aiAttended * pct(in.AppointmentToSaleRate)
	aiRevenue := aiSales * in.AvgRevenuePerSale
	revenueIncrease := aiRevenue - revenue

	effectiveCostY1 := in.AIMonthlyCost + amortizedSetup(in.AISetupFee)

	gain := laborSavings + revenueIncrease
	monthlyROI := returnOnCost(gain, effectiveCostY1)

	return models.Results{
		HumanMonthlyInteractionCost:      humanCost,
		HumanMonthlyQualifiedLeads:       qualified,
		HumanMonthlyAppointmentsBooked:   booked,
		HumanMonthlyAppointmentsAttended: attended,
		HumanMonthlySales:                sales,
		HumanMonthlyRevenue:              revenue,

		AIMonthlyHumanInteractionCostReduced: aiHumanCost,
		AIMonthlyLaborCostSavings:            laborSavings,
		AIInfluencedQualifiedLeads:           aiQualified,
		AIAppointmentBookingRate:             aiBookingRate,
		AIEffectiveShowUpRate:                aiShowUpRate,
		AIMonthlyAppointmentsBooked:          aiBooked,
		AIMonthlyAppointmentsAttended:        aiAttended,
		AIMonthlySales:                       aiSales,
		AIMonthlyRevenue:                     aiRevenue,
		AIMonthlyRevenueIncrease:             revenueIncrease,

		AITotalMonthlyCost:       in.AIMonthlyCost,
		AISetupFee:               in.AISetupFee,
		AIEffectiveMonthlyCostY1: effectiveCostY1,

		TotalMonthlyGain: gain,
		MonthlyROI:       monthlyROI,
		// The monthly rate is reported as the annual rate as-is; it is not
		// compounded or scaled by 12.
		AnnualROI:             monthlyROI,
		AnnualTotalGain:       gain * monthsPerYear,
		AnnualCostSavings:     laborSavings * monthsPerYear,
		AnnualRevenueIncrease: revenueIncrease * monthsPerYear,
		PaybackPeriod:         PaybackMonths(in.AISetupFee, gain),

		TotalMonthlyInteractions:          in.TotalMonthlyInteractions,
		HumanInteractionsMonthly:          humanInteractions,
		AIHandledInteractionsMonthly:      aiHandled,
		HumanInteractionsRemainingMonthly: humanRemaining,
	}
}

// PaybackMonths is the number of months of gain needed to recover the setup fee.
// 0 means immediate, +Inf means never.
func PaybackMonths(setupFee, monthlyGain float64) float64 {
	switch {
	case monthlyGain > 0 && setupFee > 0:
		return setupFee / monthlyGain
	case monthlyGain > 0:
		return 0
	default:
		return math.Inf(1)
	}
}

func returnOnCost(gain, cost float64) float64 {
	if cost > 0 {
		return (gain - cost) / cost * 100
	}
	if gain > 0 {
		return math.Inf(1)
	}
	return 0
}

func amortizedSetup(fee float64) float64 {
	if fee > 0 {
		return fee / monthsPerYear
	}
	return 0
}

func pct(v float64) float64 { return v / 100 }
