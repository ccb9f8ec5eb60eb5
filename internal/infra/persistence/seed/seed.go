// Package seed provides the idempotent demo-data bootstrap that fills the
// policy catalog and the weather-risk table before the API starts serving.
package seed

import (
	"context"
	"log/slog"

	"monsoon/internal/domain/entity"
	"monsoon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Seeder inserts the demo catalog and weather dataset. Run is guarded: when
// the policy table already holds rows the whole step is skipped, so repeated
// startups never duplicate data.
type Seeder struct {
	policyRepo repository.PolicyRepository
	riskRepo   repository.WeatherRiskRepository
	logger     *slog.Logger
}

// New is the constructor for Seeder.
func New(
	policyRepo repository.PolicyRepository,
	riskRepo repository.WeatherRiskRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		policyRepo: policyRepo,
		riskRepo:   riskRepo,
		logger:     logger,
	}
}

// Run seeds the catalog when it is empty.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.policyRepo.FindAllActive(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to inspect policy catalog")
	}
	if len(existing) > 0 {
		s.logger.Info("Seed skipped, policy catalog already populated", "policies", len(existing))

		return nil
	}

	s.logger.Info("Seeding database with monsoon insurance data")

	for _, policy := range demoPolicies() {
		if err := s.policyRepo.Create(ctx, policy); err != nil {
			return errors.Wrap(err, "failed to seed policy")
		}
	}

	for _, risk := range demoWeatherRisks() {
		if err := s.riskRepo.Create(ctx, risk); err != nil {
			return errors.Wrap(err, "failed to seed weather risk")
		}
	}

	s.logger.Info("Database seeding completed")

	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func demoPolicies() []*entity.Policy {
	return []*entity.Policy{
		{
			ID:             uuid.NewString(),
			Name:           "Parametric Monsoon Protection Plus",
			Description:    "Advanced parametric insurance providing pre-defined payouts based on rainfall data. Payouts are triggered automatically when rainfall exceeds predetermined thresholds, eliminating lengthy claim assessments.",
			CoverageAmount: money("500000.00"),
			BasePremium:    money("15000.00"),
			CoverageType:   entity.CoverageTypeCrop,
			Features: []string{
				"Automatic payout triggers based on rainfall data",
				"No individual loss assessment required",
				"Faster claim processing (within 7 days)",
				"Coverage for excess rainfall and flooding",
				"Satellite-based rainfall monitoring",
				"SMS alerts for weather warnings",
			},
			EligibilityCriteria: []string{
				"Farmers with land ownership documents",
				"Minimum 1 acre farmland",
				"Crops must be monsoon-dependent",
				"Previous year's cultivation proof required",
			},
			Exclusions: []string{
				"War and nuclear risks",
				"Intentional damage to crops",
				"Pest attacks not related to weather",
				"Poor farming practices",
			},
			ClaimProcess: "Automatic payout when rainfall exceeds 150% of normal levels or falls below 50% for 15 consecutive days during monsoon season.",
			IsActive:     true,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Property Flood Shield",
			Description:    "Comprehensive protection against monsoon-related property damage including flooding, waterlogging, and structural damage caused by excessive rainfall.",
			CoverageAmount: money("1000000.00"),
			BasePremium:    money("35000.00"),
			CoverageType:   entity.CoverageTypeProperty,
			Features: []string{
				"24/7 emergency response team",
				"Temporary accommodation coverage",
				"Electronic appliance protection",
				"Foundation and structural damage coverage",
				"Alternative living expense reimbursement",
				"Professional cleaning and restoration",
			},
			EligibilityCriteria: []string{
				"Property ownership or long-term lease",
				"Property age less than 30 years",
				"Located in flood-prone areas",
				"Basic flood prevention measures implemented",
			},
			Exclusions: []string{
				"Pre-existing structural damage",
				"Properties in declared high-risk zones",
				"Negligent maintenance",
				"Damage from poor construction",
			},
			ClaimProcess: "Submit claim within 48 hours of damage with photos and rainfall data verification. Assessment completed within 5 working days.",
			IsActive:     true,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Livestock Monsoon Care",
			Description:    "Specialized insurance for livestock protection during monsoon season, covering disease outbreaks, feed shortage, and animal loss due to flooding.",
			CoverageAmount: money("300000.00"),
			BasePremium:    money("18000.00"),
			CoverageType:   entity.CoverageTypeLivestock,
			Features: []string{
				"Veterinary emergency services",
				"Feed shortage compensation",
				"Vaccination and treatment coverage",
				"Shelter reconstruction support",
				"Disease outbreak protection",
				"Transportation to safe zones",
			},
			EligibilityCriteria: []string{
				"Registered livestock ownership",
				"Minimum 10 animals",
				"Veterinary health certificates",
				"Proper shelter facilities",
			},
			Exclusions: []string{
				"Pre-existing diseases",
				"Animals over 8 years old",
				"Negligent animal care",
				"Non-monsoon related deaths",
			},
			ClaimProcess: "Immediate veterinary assessment required. Claims processed within 3 days for emergency medical treatment.",
			IsActive:     true,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Micro Monsoon Shield",
			Description:    "Affordable parametric insurance for small farmers and informal workers, inspired by SEWA's success in protecting women workers from extreme weather impacts.",
			CoverageAmount: money("50000.00"),
			BasePremium:    money("2500.00"),
			CoverageType:   entity.CoverageTypeCrop,
			Features: []string{
				"Low premium affordable coverage",
				"Mobile-based claim reporting",
				"Community group discounts",
				"Flexible payment options",
				"Local language support",
				"Financial literacy training",
			},
			EligibilityCriteria: []string{
				"Small and marginal farmers",
				"Annual income below ₹2 lakhs",
				"Valid identity documents",
				"Group enrollment preferred",
			},
			Exclusions: []string{
				"Commercial farming operations",
				"High-value crops without declaration",
				"Land disputes",
				"Illegal cultivation",
			},
			ClaimProcess: "Simplified process with community verification. Payouts through digital wallets or bank transfers within 5 days.",
			IsActive:     true,
		},
		{
			ID:             uuid.NewString(),
			Name:           "Nagaland State Disaster Protection",
			Description:    "State-sponsored parametric insurance solution similar to Nagaland's DRTPS, providing comprehensive protection against monsoon disasters for communities.",
			CoverageAmount: money("2000000.00"),
			BasePremium:    money("60000.00"),
			CoverageType:   entity.CoverageTypeProperty,
			Features: []string{
				"State government backing",
				"Community-wide coverage",
				"Disaster management integration",
				"Early warning systems",
				"Rehabilitation support",
				"Infrastructure protection",
			},
			EligibilityCriteria: []string{
				"Residents of participating districts",
				"Community enrollment required",
				"Government identity verification",
				"Disaster management training completed",
			},
			Exclusions: []string{
				"Areas with pending land disputes",
				"Unauthorized constructions",
				"Non-compliance with building codes",
				"Previously declared unsafe zones",
			},
			ClaimProcess: "State disaster management authority coordinates assessment. Community payouts processed within 10 days of disaster declaration.",
			IsActive:     true,
		},
	}
}

func demoWeatherRisks() []*entity.WeatherRisk {
	rows := []struct {
		state    string
		district string
		level    entity.RiskLevel
		rainfall string
		flood    int
		drought  int
		cyclone  int
	}{
		{"Nagaland", "Kohima", entity.RiskLevelHigh, "1800.00", 8, 3, 2},
		{"Nagaland", "Dimapur", entity.RiskLevelVeryHigh, "2200.00", 9, 2, 1},
		{"Kerala", "Idukki", entity.RiskLevelVeryHigh, "3000.00", 10, 1, 4},
		{"Kerala", "Wayanad", entity.RiskLevelHigh, "2800.00", 9, 2, 3},
		{"Maharashtra", "Mumbai", entity.RiskLevelHigh, "2200.00", 8, 4, 6},
		{"Maharashtra", "Pune", entity.RiskLevelMedium, "600.00", 5, 6, 3},
		{"West Bengal", "Kolkata", entity.RiskLevelHigh, "1600.00", 7, 3, 9},
		{"West Bengal", "North 24 Parganas", entity.RiskLevelVeryHigh, "1800.00", 9, 2, 10},
		{"Assam", "Guwahati", entity.RiskLevelVeryHigh, "2500.00", 10, 2, 1},
		{"Assam", "Silchar", entity.RiskLevelHigh, "2200.00", 9, 3, 2},
		{"Rajasthan", "Jaipur", entity.RiskLevelMedium, "400.00", 2, 9, 1},
		{"Rajasthan", "Jodhpur", entity.RiskLevelLow, "300.00", 1, 10, 1},
		{"Tamil Nadu", "Chennai", entity.RiskLevelHigh, "1200.00", 7, 5, 8},
		{"Tamil Nadu", "Coimbatore", entity.RiskLevelMedium, "800.00", 4, 6, 3},
		{"Odisha", "Bhubaneswar", entity.RiskLevelHigh, "1500.00", 8, 4, 9},
		{"Odisha", "Cuttack", entity.RiskLevelVeryHigh, "1700.00", 9, 3, 10},
	}

	risks := make([]*entity.WeatherRisk, 0, len(rows))
	for _, row := range rows {
		risks = append(risks, &entity.WeatherRisk{
			ID:              uuid.NewString(),
			State:           row.state,
			District:        row.district,
			RiskLevel:       row.level,
			AverageRainfall: money(row.rainfall),
			FloodRisk:       row.flood,
			DroughtRisk:     row.drought,
			CycloneRisk:     row.cyclone,
		})
	}

	return risks
}
