package config

import (
	"fmt"
	"os"

	"github.com/alejandrodnm/campsim/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Scenarios  []ScenarioConfig `yaml:"scenarios"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig contiene las tasas del funnel por tier y la economía
// por venta. Un valor en cero (o ausente) cae al default del playbook;
// para forzar un cero real están los flags del binario.
type SimulationConfig struct {
	RevenuePerSale float64    `yaml:"revenue_per_sale"`
	ProfitPerSale  float64    `yaml:"profit_per_sale"`
	Small          RateConfig `yaml:"small"`
	Large          RateConfig `yaml:"large"`
}

// RateConfig agrupa las tasas de un tier.
type RateConfig struct {
	CPV      float64 `yaml:"cpv"`
	CTR      float64 `yaml:"ctr"`
	ConvRate float64 `yaml:"conv_rate"`
}

// ScenarioConfig define una fila de la tabla de escenarios.
// Si la lista está vacía se usa la tabla estándar de cuatro campañas.
type ScenarioConfig struct {
	Name   string  `yaml:"name"`
	Budget float64 `yaml:"budget"`
	Days   int     `yaml:"days"`
	Tier   string  `yaml:"tier"` // small | large
}

// OutputConfig controla los archivos de salida opcionales.
type OutputConfig struct {
	CSV   string `yaml:"csv"`   // "" = no escribir CSV
	Chart string `yaml:"chart"` // "" = no generar gráfico
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env
// si existe. Las variables de entorno pisan los valores del YAML para
// las keys soportadas.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve la configuración integrada sin leer ningún archivo:
// tasas del playbook, tabla estándar, sin salidas a disco.
func Default() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg
}

// Assumptions traduce la sección simulation al tipo del dominio.
func (c *Config) Assumptions() domain.AssumptionSet {
	return domain.AssumptionSet{
		Small: domain.TierAssumptions{
			CPV:      c.Simulation.Small.CPV,
			CTR:      c.Simulation.Small.CTR,
			ConvRate: c.Simulation.Small.ConvRate,
		},
		Large: domain.TierAssumptions{
			CPV:      c.Simulation.Large.CPV,
			CTR:      c.Simulation.Large.CTR,
			ConvRate: c.Simulation.Large.ConvRate,
		},
		RevenuePerSale: c.Simulation.RevenuePerSale,
		ProfitPerSale:  c.Simulation.ProfitPerSale,
	}
}

// BuildScenarios resuelve la tabla de escenarios contra las tasas
// configuradas. Con la lista vacía devuelve la tabla estándar.
func (c *Config) BuildScenarios() ([]domain.Scenario, error) {
	assumptions := c.Assumptions()

	if len(c.Scenarios) == 0 {
		return domain.DefaultScenarios(assumptions), nil
	}

	scenarios := make([]domain.Scenario, 0, len(c.Scenarios))
	for i, row := range c.Scenarios {
		tier, err := domain.ParseTier(row.Tier)
		if err != nil {
			return nil, fmt.Errorf("config.BuildScenarios: scenario %d (%q): %w", i, row.Name, err)
		}
		scenarios = append(scenarios, domain.NewScenario(row.Name, row.Budget, row.Days, tier, assumptions))
	}
	return scenarios, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si
// están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Simulation.RevenuePerSale <= 0 {
		cfg.Simulation.RevenuePerSale = 100
	}
	if cfg.Simulation.ProfitPerSale <= 0 {
		cfg.Simulation.ProfitPerSale = 50
	}
	if cfg.Simulation.Small.CPV <= 0 {
		cfg.Simulation.Small.CPV = 0.06
	}
	if cfg.Simulation.Small.CTR <= 0 {
		cfg.Simulation.Small.CTR = 0.05
	}
	if cfg.Simulation.Small.ConvRate <= 0 {
		cfg.Simulation.Small.ConvRate = 0.04
	}
	if cfg.Simulation.Large.CPV <= 0 {
		cfg.Simulation.Large.CPV = 0.05
	}
	if cfg.Simulation.Large.CTR <= 0 {
		cfg.Simulation.Large.CTR = 0.06
	}
	if cfg.Simulation.Large.ConvRate <= 0 {
		cfg.Simulation.Large.ConvRate = 0.05
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].Tier == "" {
			cfg.Scenarios[i].Tier = "small"
		}
	}
}
