package domain

// ScenarioResult contiene las métricas derivadas del funnel para un
// escenario. Todas salen de un pipeline lineal: cada etapa multiplica
// la anterior por una tasa.
type ScenarioResult struct {
	Scenario Scenario

	Views       float64 // budget / cpv
	Clicks      float64 // views × ctr
	Conversions float64 // clicks × conv_rate
	Revenue     float64 // conversions × revenue_per_sale
	Profit      float64 // conversions × profit_per_sale
	ROI         float64 // revenue / budget, múltiplo bruto (3.33 = 3.33x)
}

// ROIPercent devuelve el ROI expresado como porcentaje (3.33 → 333).
func (r ScenarioResult) ROIPercent() float64 {
	return r.ROI * 100
}

// NetProfit devuelve el margen total menos el presupuesto gastado.
func (r ScenarioResult) NetProfit() float64 {
	return r.Profit - r.Scenario.Budget
}

// Simulate ejecuta el funnel de marketing para un escenario.
//
// Funnel:
//
//	views       = budget / cpv
//	clicks      = views × ctr
//	conversions = clicks × conv_rate
//	revenue     = conversions × revenue_per_sale
//	profit      = conversions × profit_per_sale
//	roi         = revenue / budget
//
// Las divisiones con denominador cero devuelven 0 en lugar de Inf:
// un presupuesto de $0 o un CPV de $0 producen métricas cero, nunca
// un crash ni un NaN en el CSV.
func Simulate(s Scenario) ScenarioResult {
	r := ScenarioResult{Scenario: s}

	if s.CPV > 0 {
		r.Views = s.Budget / s.CPV
	}
	r.Clicks = r.Views * s.CTR
	r.Conversions = r.Clicks * s.ConvRate
	r.Revenue = r.Conversions * s.RevenuePerSale
	r.Profit = r.Conversions * s.ProfitPerSale

	if s.Budget > 0 {
		r.ROI = r.Revenue / s.Budget
	}

	return r
}

// SimulateAll ejecuta el funnel para cada escenario, en el mismo orden.
func SimulateAll(scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, len(scenarios))
	for i, s := range scenarios {
		results[i] = Simulate(s)
	}
	return results
}

// BreakEvenSales calcula cuántas ventas hacen falta para que el margen
// cubra el presupuesto. Devuelve 0 si no hay margen por venta.
func BreakEvenSales(budget, profitPerSale float64) float64 {
	if profitPerSale <= 0 {
		return 0
	}
	return budget / profitPerSale
}
