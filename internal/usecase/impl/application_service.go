package impl

import (
	"context"
	"log/slog"
	"time"

	"monsoon/internal/domain/entity"
	domainerrors "monsoon/internal/domain/errors"
	"monsoon/internal/domain/repository"
	"monsoon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// applicationPremiumRate is the flat rate applied when an application is
// stored. It is deliberately simpler than the quote formula; the stored
// premium is fixed at submission time and never re-derived.
var applicationPremiumRate = decimal.NewFromFloat(0.05)

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	applicationRepo repository.PolicyApplicationRepository
	policyRepo      repository.PolicyRepository
	logger          *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(
	applicationRepo repository.PolicyApplicationRepository,
	policyRepo repository.PolicyRepository,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		applicationRepo: applicationRepo,
		policyRepo:      policyRepo,
		logger:          logger,
	}
}

// SubmitApplication persists a new pending application for the user.
func (srv *applicationService) SubmitApplication(
	ctx context.Context,
	userID string,
	input *usecase.ApplicationInput,
) (*entity.PolicyApplication, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	srv.logger.Info("Submitting policy application",
		"userID", userID,
		"policyID", input.PolicyID,
	)

	if _, err := srv.policyRepo.FindByID(ctx, input.PolicyID); err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to verify policy")
	}

	coverage := decimal.NewFromFloat(input.CoverageAmount)

	application := &entity.PolicyApplication{
		ID:                uuid.NewString(),
		UserID:            userID,
		PolicyID:          input.PolicyID,
		ApplicationData:   applicationData(input),
		CalculatedPremium: coverage.Mul(applicationPremiumRate),
		Status:            entity.ApplicationStatusPending,
		ApplicationDate:   time.Now(),
	}

	if err := srv.applicationRepo.Create(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to create policy application")
	}

	return application, nil
}

// GetUserApplications retrieves the caller's applications, most recent first.
func (srv *applicationService) GetUserApplications(ctx context.Context, userID string) ([]*entity.PolicyApplication, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	applications, err := srv.applicationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list policy applications")
	}

	return applications, nil
}

// applicationData snapshots the submitted form as an opaque payload; omitted
// optional fields leave no key behind.
func applicationData(input *usecase.ApplicationInput) map[string]any {
	data := map[string]any{
		"policyId":       input.PolicyID,
		"applicantName":  input.ApplicantName,
		"email":          input.Email,
		"phoneNumber":    input.PhoneNumber,
		"address":        input.Address,
		"city":           input.City,
		"state":          input.State,
		"pincode":        input.Pincode,
		"coverageAmount": input.CoverageAmount,
	}

	if input.PropertyType != "" {
		data["propertyType"] = input.PropertyType
	}
	if input.PropertyValue != 0 {
		data["propertyValue"] = input.PropertyValue
	}
	if input.CropType != "" {
		data["cropType"] = input.CropType
	}
	if input.FarmSize != 0 {
		data["farmSize"] = input.FarmSize
	}

	return data
}
