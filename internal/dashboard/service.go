package dashboard

import (
	"log/slog"

	"github.com/ceramiqa/quality-management/internal/energy"
	"github.com/ceramiqa/quality-management/internal/production"
	"github.com/ceramiqa/quality-management/internal/quality"
	"github.com/ceramiqa/quality-management/internal/waste"
)

type LotLister interface {
	ListLots() ([]*production.ProductionLot, error)
}

type TestLister interface {
	ListTests() ([]*quality.QualityTest, error)
}

type EnergyLister interface {
	ListRecords() ([]*energy.Record, error)
}

type WasteLister interface {
	ListRecords() ([]*waste.Record, error)
}

// Service recomputes the dashboard from the live record lists on every call.
// Nothing is cached; a freshly created record shows up on the next request.
type Service struct {
	lots   LotLister
	tests  TestLister
	energy EnergyLister
	waste  WasteLister
	logger *slog.Logger
}

func NewService(lots LotLister, tests TestLister, energyRecords EnergyLister, wasteRecords WasteLister, logger *slog.Logger) *Service {
	return &Service{
		lots:   lots,
		tests:  tests,
		energy: energyRecords,
		waste:  wasteRecords,
		logger: logger,
	}
}

func (s *Service) Metrics() (*Metrics, error) {
	lots, err := s.lots.ListLots()
	if err != nil {
		s.logger.Error("failed to load lots for dashboard", "error", err)
		return nil, err
	}

	tests, err := s.tests.ListTests()
	if err != nil {
		s.logger.Error("failed to load quality tests for dashboard", "error", err)
		return nil, err
	}

	energyRecords, err := s.energy.ListRecords()
	if err != nil {
		s.logger.Error("failed to load energy records for dashboard", "error", err)
		return nil, err
	}

	wasteRecords, err := s.waste.ListRecords()
	if err != nil {
		s.logger.Error("failed to load waste records for dashboard", "error", err)
		return nil, err
	}

	return &Metrics{
		TotalProduction:    TotalProduction(lots),
		TotalQualityTests:  len(tests),
		QualityRate:        QualityRate(tests),
		RecyclingRate:      RecyclingRate(wasteRecords),
		TotalEnergyKwh:     TotalEnergy(energyRecords),
		TotalWasteKg:       TotalWaste(wasteRecords),
		EnergyDistribution: EnergyDistribution(energyRecords),
	}, nil
}
