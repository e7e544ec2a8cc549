// Package inputs assembles complete, range-checked snapshots of the
// calculator controls before anything is computed from them.
package inputs

import (
	"github.com/AngelCh415/ROI_GO/internal/format"
	"github.com/AngelCh415/ROI_GO/internal/models"
)

// Field describes one slider of the calculator form.
type Field struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Help  string  `json:"help,omitempty"`
	Group string  `json:"group"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
	Unit  string  `json:"unit"`

	ref func(*models.Inputs) *float64
}

// Value reads the field from a snapshot.
func (f Field) Value(in models.Inputs) float64 { return *f.ref(&in) }

func (f Field) set(in *models.Inputs, v float64) { *f.ref(in) = v }

const (
	GroupVolume = "Business & Interaction Volume"
	GroupHuman  = "Current Human Performance & Costs"
	GroupFunnel = "Current Sales Funnel Rates"
	GroupAI     = "AI Agent Parameters & Costs"
)

var catalog = []Field{
	{
		Key: "totalMonthlyInteractions", Label: "Total Monthly Incoming Interactions", Group: GroupVolume,
		Help: "All relevant conversations across SMS, WhatsApp, email, social DMs and web chat.",
		Min:  0, Max: 5000, Step: 10, Unit: "#",
		ref: func(in *models.Inputs) *float64 { return &in.TotalMonthlyInteractions },
	},
	{
		Key: "avgRevenuePerSale", Label: "Average Revenue per Sale", Group: GroupVolume,
		Help: "Typical value of a deal closed from these interactions.",
		Min:  0, Max: 10000, Step: 10, Unit: "$",
		ref: func(in *models.Inputs) *float64 { return &in.AvgRevenuePerSale },
	},
	{
		Key: "avgHumanAgentHourlyCost", Label: "Average Human Agent Hourly Cost", Group: GroupHuman,
		Help: "Fully loaded hourly cost: salary, benefits and overhead.",
		Min:  0, Max: 100, Step: 1, Unit: "$",
		ref: func(in *models.Inputs) *float64 { return &in.AvgHumanAgentHourlyCost },
	},
	{
		Key: "avgTimePerInteractionByHuman", Label: "Average Time Spent per Interaction by Human", Group: GroupHuman,
		Help: "Response, research and logging time together.",
		Min:  1, Max: 60, Step: 1, Unit: "min",
		ref: func(in *models.Inputs) *float64 { return &in.AvgTimePerInteractionByHuman },
	},
	{
		Key: "percentInteractionsHuman", Label: "% Interactions Requiring Human Intervention Currently", Group: GroupHuman,
		Help: "Share of all incoming interactions a human handles today.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.PercentInteractionsHuman },
	},
	{
		Key: "currentLeadQualificationRate", Label: "Current Lead Qualification Rate", Group: GroupFunnel,
		Help: "Share of all interactions identified as leads meeting basic criteria.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.CurrentLeadQualificationRate },
	},
	{
		Key: "currentAppointmentBookingRate", Label: "Current Appointment Booking Rate (Qualified Leads)", Group: GroupFunnel,
		Help: "Share of qualified leads that book an appointment.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.CurrentAppointmentBookingRate },
	},
	{
		Key: "appointmentShowUpRate", Label: "Appointment Show-Up Rate", Group: GroupFunnel,
		Help: "Share of booked appointments that are attended.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.AppointmentShowUpRate },
	},
	{
		Key: "appointmentToSaleRate", Label: "Appointment-to-Sale Rate", Group: GroupFunnel,
		Help: "Share of attended appointments that become paying customers.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.AppointmentToSaleRate },
	},
	{
		Key: "aiMonthlyCost", Label: "Monthly Cost of AI Agent", Group: GroupAI,
		Help: "Monthly subscription or service fee.",
		Min:  0, Max: 5000, Step: 10, Unit: "$",
		ref: func(in *models.Inputs) *float64 { return &in.AIMonthlyCost },
	},
	{
		Key: "aiSetupFee", Label: "One-time Setup Fee", Group: GroupAI,
		Help: "Initial setup or implementation cost.",
		Min:  0, Max: 10000, Step: 100, Unit: "$",
		ref: func(in *models.Inputs) *float64 { return &in.AISetupFee },
	},
	{
		Key: "aiAutonomyRate", Label: "Estimated % Interactions Handled Autonomously by AI", Group: GroupAI,
		Help: "Share of all interactions the AI resolves with no human help.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.AIAutonomyRate },
	},
	{
		Key: "aiBookingRateImprovement", Label: "Estimated Improvement in Appointment Booking Rate (AI vs Human)", Group: GroupAI,
		Help: "Relative lift in booking rate for qualified leads.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.AIBookingRateImprovement },
	},
	{
		Key: "aiShowRateImprovement", Label: "Estimated Improvement in Appointment Show-Up Rate (AI vs Human)", Group: GroupAI,
		Help: "Relative lift in show-up rate from reminders; the result is capped at 100%.",
		Min:  0, Max: 100, Step: 1, Unit: "%",
		ref: func(in *models.Inputs) *float64 { return &in.AIShowRateImprovement },
	},
}

// Catalog returns the slider definitions in form order.
func Catalog() []Field {
	out := make([]Field, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a field by its JSON key.
func Lookup(key string) (Field, bool) {
	for _, f := range catalog {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults is the starting snapshot of the form.
func Defaults() models.Inputs {
	return models.Inputs{
		AvgRevenuePerSale:             500,
		TotalMonthlyInteractions:      500,
		AvgHumanAgentHourlyCost:       30,
		AvgTimePerInteractionByHuman:  10,
		PercentInteractionsHuman:      70,
		CurrentLeadQualificationRate:  25,
		CurrentAppointmentBookingRate: 30,
		AppointmentShowUpRate:         75,
		AppointmentToSaleRate:         30,
		AIMonthlyCost:                 497,
		AISetupFee:                    2500,
		AIAutonomyRate:                75,
		AIBookingRateImprovement:      15,
		AIShowRateImprovement:         15,
	}
}

// FormatValue renders the value label shown next to a slider.
func FormatValue(f Field, v float64) string {
	switch f.Unit {
	case "$":
		return format.Number(v, format.USD(2), format.FallbackZero)
	case "%":
		return format.Number(v, format.Pct(0), format.FallbackZero)
	default:
		return format.Number(v, format.Decimal(1), format.FallbackZero) + f.Unit
	}
}
