package settings

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aristath/trade-journal/internal/modules/metrics"
)

// Setting keys for the journal calculation inputs
const (
	KeyStartingCapital = "starting_capital"
	KeyRiskPercent     = "risk_percent"
	KeyValuePerLot     = "value_per_lot"
)

// Service resolves the journal configuration from stored settings, falling
// back to the defaults supplied at construction (usually the environment).
type Service struct {
	repo     *Repository
	defaults metrics.Config
	log      zerolog.Logger
}

// NewService creates a new settings service
func NewService(repo *Repository, defaults metrics.Config, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		log:      log.With().Str("service", "settings").Logger(),
	}
}

// Config returns the effective calculation inputs. Missing or unparseable
// stored values fall back to the defaults.
func (s *Service) Config() metrics.Config {
	cfg := s.defaults
	cfg.StartingCapital = s.getFloat(KeyStartingCapital, cfg.StartingCapital)
	cfg.RiskPercent = s.getFloat(KeyRiskPercent, cfg.RiskPercent)
	cfg.ValuePerLot = s.getFloat(KeyValuePerLot, cfg.ValuePerLot)
	return cfg
}

// Update stores any provided values. Nil fields are left untouched.
func (s *Service) Update(capital, riskPercent, valuePerLot *float64) error {
	if capital != nil {
		if err := s.setFloat(KeyStartingCapital, *capital); err != nil {
			return err
		}
	}
	if riskPercent != nil {
		if err := s.setFloat(KeyRiskPercent, *riskPercent); err != nil {
			return err
		}
	}
	if valuePerLot != nil {
		if err := s.setFloat(KeyValuePerLot, *valuePerLot); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) getFloat(key string, fallback float64) float64 {
	value, err := s.repo.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to read setting")
		return fallback
	}
	if value == nil {
		return fallback
	}

	f, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		s.log.Warn().Str("key", key).Str("value", *value).Msg("Ignoring non-numeric setting")
		return fallback
	}
	return f
}

func (s *Service) setFloat(key string, value float64) error {
	return s.repo.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}
