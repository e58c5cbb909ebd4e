package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScenario() Scenario {
	return NewScenario("Small", 100, 5, TierSmall, DefaultAssumptions())
}

func TestSimulate_SmallDefaults(t *testing.T) {
	// budget=100, cpv=0.06, ctr=0.05, conv=0.04, rps=100, pps=50
	// views       = 100 / 0.06        = 1666.67
	// clicks      = 1666.67 × 0.05    = 83.33
	// conversions = 83.33 × 0.04      = 3.33
	// revenue     = 3.33 × 100        = 333.33
	// profit      = 3.33 × 50         = 166.67
	// roi         = 333.33 / 100      = 3.33
	r := Simulate(smallScenario())

	assert.InDelta(t, 1666.67, r.Views, 0.01)
	assert.InDelta(t, 83.33, r.Clicks, 0.01)
	assert.InDelta(t, 3.33, r.Conversions, 0.01)
	assert.InDelta(t, 333.33, r.Revenue, 0.01)
	assert.InDelta(t, 166.67, r.Profit, 0.01)
	assert.InDelta(t, 3.33, r.ROI, 0.01)
}

func TestSimulate_FunnelChain(t *testing.T) {
	// Cada etapa debe ser exactamente la anterior por su tasa.
	r := Simulate(smallScenario())

	assert.InDelta(t, r.Views*0.05, r.Clicks, 1e-9)
	assert.InDelta(t, r.Clicks*0.04, r.Conversions, 1e-9)
	assert.InDelta(t, r.Conversions*100, r.Revenue, 1e-9)
	assert.InDelta(t, r.Conversions*50, r.Profit, 1e-9)
}

func TestSimulate_ROIIsRevenueOverBudget(t *testing.T) {
	for _, r := range SimulateAll(DefaultScenarios(DefaultAssumptions())) {
		assert.InDelta(t, r.Revenue/r.Scenario.Budget, r.ROI, 1e-9, r.Scenario.Name)
	}
}

func TestSimulate_ZeroBudget(t *testing.T) {
	s := smallScenario()
	s.Budget = 0

	r := Simulate(s)

	assert.Equal(t, 0.0, r.Views)
	assert.Equal(t, 0.0, r.Revenue)
	assert.Equal(t, 0.0, r.ROI, "budget cero no debe producir Inf")
}

func TestSimulate_ZeroCPV(t *testing.T) {
	s := smallScenario()
	s.CPV = 0

	r := Simulate(s)

	assert.Equal(t, 0.0, r.Views)
	assert.Equal(t, 0.0, r.Clicks)
	assert.Equal(t, 0.0, r.Conversions)
	assert.Equal(t, 0.0, r.ROI)
}

func TestSimulate_LargeTier(t *testing.T) {
	// budget=500, cpv=0.05 → views=10000, clicks=600, conv=30
	// revenue=3000, profit=1500, roi=6.0
	r := Simulate(NewScenario("Large", 500, 30, TierLarge, DefaultAssumptions()))

	assert.InDelta(t, 10000.0, r.Views, 0.01)
	assert.InDelta(t, 600.0, r.Clicks, 0.01)
	assert.InDelta(t, 30.0, r.Conversions, 0.01)
	assert.InDelta(t, 3000.0, r.Revenue, 0.01)
	assert.InDelta(t, 1500.0, r.Profit, 0.01)
	assert.InDelta(t, 6.0, r.ROI, 0.01)
}

func TestSimulateAll_PreservesOrder(t *testing.T) {
	scenarios := DefaultScenarios(DefaultAssumptions())
	results := SimulateAll(scenarios)

	require.Len(t, results, len(scenarios))
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
	}
}

// --- helpers de presentación ---

func TestROIPercent(t *testing.T) {
	r := ScenarioResult{ROI: 3.33}
	assert.InDelta(t, 333.0, r.ROIPercent(), 0.01)
}

func TestNetProfit(t *testing.T) {
	// profit=166.67 sobre budget=100 → neto 66.67
	r := Simulate(smallScenario())
	assert.InDelta(t, 66.67, r.NetProfit(), 0.01)
}

func TestBreakEvenSales(t *testing.T) {
	// budget=100, margen=$50/venta → 2 ventas cubren el gasto
	assert.InDelta(t, 2.0, BreakEvenSales(100, 50), 1e-9)
}

func TestBreakEvenSales_NoMargin(t *testing.T) {
	assert.Equal(t, 0.0, BreakEvenSales(100, 0))
}
