package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/ceramiqa/quality-management/internal/energy"
	"github.com/ceramiqa/quality-management/internal/production"
	"github.com/ceramiqa/quality-management/internal/quality"
	"github.com/ceramiqa/quality-management/internal/waste"
)

// Metrics is the aggregate snapshot served to the dashboard. Rates are
// pre-formatted strings so every client renders the same figure.
type Metrics struct {
	TotalProduction    int64          `json:"total_production"`
	TotalQualityTests  int            `json:"total_quality_tests"`
	QualityRate        string         `json:"quality_rate"`
	RecyclingRate      string         `json:"recycling_rate"`
	TotalEnergyKwh     float64        `json:"total_energy_kwh"`
	TotalWasteKg       float64        `json:"total_waste_kg"`
	EnergyDistribution map[string]int `json:"energy_distribution"`
}

// TotalProduction sums the unit quantity over every lot.
func TotalProduction(lots []*production.ProductionLot) int64 {
	var total int64
	for _, lot := range lots {
		total += lot.Quantity
	}
	return total
}

// QualityRate is the share of conforming tests as a percentage with one
// decimal. The divisor is clamped to 1 so an empty list yields "0.0".
func QualityRate(tests []*quality.QualityTest) string {
	conforming := 0
	for _, t := range tests {
		if t.Status == quality.StatusConforming {
			conforming++
		}
	}
	divisor := len(tests)
	if divisor == 0 {
		divisor = 1
	}
	rate := float64(conforming) / float64(divisor) * 100
	return fmt.Sprintf("%.1f", rate)
}

// RecyclingRate is the share of waste records whose disposal method mentions
// recycling. An empty list yields the literal "0".
func RecyclingRate(records []*waste.Record) string {
	if len(records) == 0 {
		return "0"
	}
	recycled := 0
	for _, r := range records {
		if strings.Contains(r.DisposalMethod, waste.DisposalRecycling) {
			recycled++
		}
	}
	rate := float64(recycled) / float64(len(records)) * 100
	return fmt.Sprintf("%.1f", rate)
}

// EnergyDistribution returns each source's share of total consumption as a
// whole percent. All zero when nothing has been consumed.
func EnergyDistribution(records []*energy.Record) map[string]int {
	totals := make(map[string]float64)
	var overall float64
	for _, r := range records {
		totals[r.EnergySource] += r.ConsumptionKwh
		overall += r.ConsumptionKwh
	}

	distribution := make(map[string]int, len(totals))
	for source, consumed := range totals {
		if overall == 0 {
			distribution[source] = 0
			continue
		}
		distribution[source] = int(math.Round(consumed / overall * 100))
	}
	return distribution
}

// TotalEnergy sums consumption in kWh over every record.
func TotalEnergy(records []*energy.Record) float64 {
	var total float64
	for _, r := range records {
		total += r.ConsumptionKwh
	}
	return total
}

// TotalWaste sums waste mass in kilograms over every record.
func TotalWaste(records []*waste.Record) float64 {
	var total float64
	for _, r := range records {
		total += r.QuantityKg
	}
	return total
}
