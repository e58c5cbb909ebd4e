package domain

import (
	"fmt"
	"math"
)

// Tier clasifica una campaña por tamaño de presupuesto. Las campañas
// grandes negocian mejor CPV y convierten más por el volumen de datos
// que alimenta la optimización de la plataforma.
type Tier int

const (
	TierSmall Tier = iota // presupuesto chico: CPV caro, funnel débil
	TierLarge             // presupuesto grande: mejor CPV y conversión
)

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	default:
		return "small"
	}
}

// ParseTier convierte el nombre del tier ("small" | "large") al enum.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "small":
		return TierSmall, nil
	case "large":
		return TierLarge, nil
	default:
		return TierSmall, fmt.Errorf("domain.ParseTier: unknown tier %q", s)
	}
}

// TierAssumptions agrupa las tasas del funnel para un tier.
type TierAssumptions struct {
	CPV      float64 // coste por view en USD
	CTR      float64 // click-through rate, fracción en [0,1]
	ConvRate float64 // conversion rate, fracción en [0,1]
}

// AssumptionSet contiene las tasas por tier y la economía por venta,
// compartida entre todos los escenarios de una corrida.
type AssumptionSet struct {
	Small          TierAssumptions
	Large          TierAssumptions
	RevenuePerSale float64 // ingreso medio por venta en USD
	ProfitPerSale  float64 // margen medio por venta en USD
}

// ForTier devuelve las tasas del tier pedido.
func (a AssumptionSet) ForTier(t Tier) TierAssumptions {
	if t == TierLarge {
		return a.Large
	}
	return a.Small
}

// DefaultAssumptions devuelve las tasas de referencia del playbook.
func DefaultAssumptions() AssumptionSet {
	return AssumptionSet{
		Small:          TierAssumptions{CPV: 0.06, CTR: 0.05, ConvRate: 0.04},
		Large:          TierAssumptions{CPV: 0.05, CTR: 0.06, ConvRate: 0.05},
		RevenuePerSale: 100,
		ProfitPerSale:  50,
	}
}

// Scenario es una campaña hipotética con todas sus tasas ya resueltas.
// Se construye desde la tabla de escenarios y no se muta después.
type Scenario struct {
	Name           string
	Budget         float64 // presupuesto total en USD
	Days           int     // duración de la campaña
	CPV            float64 // coste por view
	CTR            float64 // click-through rate [0,1]
	ConvRate       float64 // conversion rate [0,1]
	RevenuePerSale float64
	ProfitPerSale  float64
}

// NewScenario construye un escenario con las tasas del tier ya resueltas.
// El funnel nunca vuelve a consultar tiers: cada escenario viaja con sus
// propios números.
func NewScenario(name string, budget float64, days int, tier Tier, a AssumptionSet) Scenario {
	rates := a.ForTier(tier)
	return Scenario{
		Name:           name,
		Budget:         budget,
		Days:           days,
		CPV:            rates.CPV,
		CTR:            rates.CTR,
		ConvRate:       rates.ConvRate,
		RevenuePerSale: a.RevenuePerSale,
		ProfitPerSale:  a.ProfitPerSale,
	}
}

// DefaultScenarios devuelve la tabla estándar de cuatro campañas de
// referencia. Small y Baseline usan el tier small; Large y Long
// aprovechan las mejores tasas del tier large.
func DefaultScenarios(a AssumptionSet) []Scenario {
	return []Scenario{
		NewScenario("Small", 100, 5, TierSmall, a),
		NewScenario("Baseline", 200, 10, TierSmall, a),
		NewScenario("Large", 500, 30, TierLarge, a),
		NewScenario("Long", 400, 60, TierLarge, a),
	}
}

// Validate comprueba que el escenario sea coherente antes de simular.
// Budget y CPV en cero son válidos: el funnel los degrada a métricas
// cero en lugar de fallar.
func (s Scenario) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("domain.Scenario: name is required")
	case !finite(s.Budget) || s.Budget < 0:
		return fmt.Errorf("domain.Scenario %q: budget must be >= 0, got %v", s.Name, s.Budget)
	case s.Days <= 0:
		return fmt.Errorf("domain.Scenario %q: days must be > 0, got %d", s.Name, s.Days)
	case !finite(s.CPV) || s.CPV < 0:
		return fmt.Errorf("domain.Scenario %q: cpv must be >= 0, got %v", s.Name, s.CPV)
	case !finite(s.CTR) || s.CTR < 0 || s.CTR > 1:
		return fmt.Errorf("domain.Scenario %q: ctr must be within [0,1], got %v", s.Name, s.CTR)
	case !finite(s.ConvRate) || s.ConvRate < 0 || s.ConvRate > 1:
		return fmt.Errorf("domain.Scenario %q: conv_rate must be within [0,1], got %v", s.Name, s.ConvRate)
	case !finite(s.RevenuePerSale) || s.RevenuePerSale < 0:
		return fmt.Errorf("domain.Scenario %q: revenue_per_sale must be >= 0, got %v", s.Name, s.RevenuePerSale)
	case !finite(s.ProfitPerSale) || s.ProfitPerSale < 0:
		return fmt.Errorf("domain.Scenario %q: profit_per_sale must be >= 0, got %v", s.Name, s.ProfitPerSale)
	}
	return nil
}

// DailyBudget devuelve el gasto medio diario de la campaña.
// Devuelve 0 si Days no está definido.
func (s Scenario) DailyBudget() float64 {
	if s.Days <= 0 {
		return 0
	}
	return s.Budget / float64(s.Days)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
