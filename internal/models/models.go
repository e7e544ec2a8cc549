package models

import (
	"encoding/json"
	"math"
)

// Inputs is one complete snapshot of the calculator controls.
// Percent fields use the 0-100 scale.
type Inputs struct {
	AvgRevenuePerSale             float64 `json:"avgRevenuePerSale" yaml:"avgRevenuePerSale" validate:"gte=0,lte=10000"`
	TotalMonthlyInteractions      float64 `json:"totalMonthlyInteractions" yaml:"totalMonthlyInteractions" validate:"gte=0,lte=5000"`
	AvgHumanAgentHourlyCost       float64 `json:"avgHumanAgentHourlyCost" yaml:"avgHumanAgentHourlyCost" validate:"gte=0,lte=100"`
	AvgTimePerInteractionByHuman  float64 `json:"avgTimePerInteractionByHuman" yaml:"avgTimePerInteractionByHuman" validate:"gte=1,lte=60"`
	PercentInteractionsHuman      float64 `json:"percentInteractionsHuman" yaml:"percentInteractionsHuman" validate:"gte=0,lte=100"`
	CurrentLeadQualificationRate  float64 `json:"currentLeadQualificationRate" yaml:"currentLeadQualificationRate" validate:"gte=0,lte=100"`
	CurrentAppointmentBookingRate float64 `json:"currentAppointmentBookingRate" yaml:"currentAppointmentBookingRate" validate:"gte=0,lte=100"`
	AppointmentShowUpRate         float64 `json:"appointmentShowUpRate" yaml:"appointmentShowUpRate" validate:"gte=0,lte=100"`
	AppointmentToSaleRate         float64 `json:"appointmentToSaleRate" yaml:"appointmentToSaleRate" validate:"gte=0,lte=100"`
	AIMonthlyCost                 float64 `json:"aiMonthlyCost" yaml:"aiMonthlyCost" validate:"gte=0,lte=5000"`
	AISetupFee                    float64 `json:"aiSetupFee" yaml:"aiSetupFee" validate:"gte=0,lte=10000"`
	AIAutonomyRate                float64 `json:"aiAutonomyRate" yaml:"aiAutonomyRate" validate:"gte=0,lte=100"`
	AIBookingRateImprovement      float64 `json:"aiBookingRateImprovement" yaml:"aiBookingRateImprovement" validate:"gte=0,lte=100"`
	AIShowRateImprovement         float64 `json:"aiShowRateImprovement" yaml:"aiShowRateImprovement" validate:"gte=0,lte=100"`
}

// Results holds every figure derived from one Inputs snapshot.
type Results struct {
	// Before AI
	HumanMonthlyInteractionCost      float64 `json:"humanMonthlyInteractionCost"`
	HumanMonthlyQualifiedLeads       float64 `json:"humanMonthlyQualifiedLeads"`
	HumanMonthlyAppointmentsBooked   float64 `json:"humanMonthlyAppointmentsBooked"`
	HumanMonthlyAppointmentsAttended float64 `json:"humanMonthlyAppointmentsAttended"`
	HumanMonthlySales                float64 `json:"humanMonthlySales"`
	HumanMonthlyRevenue              float64 `json:"humanMonthlyRevenue"`

	// With AI
	AIMonthlyHumanInteractionCostReduced float64 `json:"aiMonthlyHumanInteractionCostReduced"`
	AIMonthlyLaborCostSavings            float64 `json:"aiMonthlyLaborCostSavings"`
	AIInfluencedQualifiedLeads           float64 `json:"aiInfluencedQualifiedLeads"`
	AIAppointmentBookingRate             float64 `json:"aiAppointmentBookingRate"`
	AIEffectiveShowUpRate                float64 `json:"aiEffectiveShowUpRate"`
	AIMonthlyAppointmentsBooked          float64 `json:"aiMonthlyAppointmentsBooked"`
	AIMonthlyAppointmentsAttended        float64 `json:"aiMonthlyAppointmentsAttended"`
	AIMonthlySales                       float64 `json:"aiMonthlySales"`
	AIMonthlyRevenue                     float64 `json:"aiMonthlyRevenue"`
	AIMonthlyRevenueIncrease             float64 `json:"aiMonthlyRevenueIncrease"`

	// AI costs
	AITotalMonthlyCost       float64 `json:"aiTotalMonthlyCost"`
	AISetupFee               float64 `json:"aiSetupFee"`
	AIEffectiveMonthlyCostY1 float64 `json:"aiEffectiveMonthlyCostY1"`

	// ROI
	TotalMonthlyGain      float64 `json:"totalMonthlyGain"`
	MonthlyROI            float64 `json:"monthlyROI"`
	AnnualROI             float64 `json:"annualROI"`
	AnnualTotalGain       float64 `json:"annualTotalGain"`
	AnnualCostSavings     float64 `json:"annualCostSavings"`
	AnnualRevenueIncrease float64 `json:"annualRevenueIncrease"`
	PaybackPeriod         float64 `json:"paybackPeriod"` // months, +Inf = never

	// Interaction volume
	TotalMonthlyInteractions          float64 `json:"totalMonthlyInteractions"`
	HumanInteractionsMonthly          float64 `json:"humanInteractionsMonthly"`
	AIHandledInteractionsMonthly      float64 `json:"aiHandledInteractionsMonthly"`
	HumanInteractionsRemainingMonthly float64 `json:"humanInteractionsRemainingMonthly"`
}

// MarshalJSON writes non-finite ROI and payback values as null; encoding/json
// rejects them otherwise.
func (r Results) MarshalJSON() ([]byte, error) {
	type plain Results
	return json.Marshal(struct {
		plain
		MonthlyROI    *float64 `json:"monthlyROI"`
		AnnualROI     *float64 `json:"annualROI"`
		PaybackPeriod *float64 `json:"paybackPeriod"`
	}{
		plain:         plain(r),
		MonthlyROI:    finiteOrNil(r.MonthlyROI),
		AnnualROI:     finiteOrNil(r.AnnualROI),
		PaybackPeriod: finiteOrNil(r.PaybackPeriod),
	})
}

func finiteOrNil(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// ChartPoint is one group of the monthly cost/benefit bar chart.
type ChartPoint struct {
	Name              string  `json:"name"`
	CurrentHumanCost  float64 `json:"Current Human Cost"`
	AICostEffectiveY1 float64 `json:"AI Cost (Effective Y1)"`
	NetBenefit        float64 `json:"Net Benefit"`
}
