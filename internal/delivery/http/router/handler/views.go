package handler

import (
	"time"

	"monsoon/internal/domain/entity"
)

// View models mirror the wire format of the public API: camelCase keys and
// money serialized as fixed-point strings.

type userView struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	Pincode         string    `json:"pincode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		PhoneNumber:     user.PhoneNumber,
		Address:         user.Address,
		City:            user.City,
		State:           user.State,
		Pincode:         user.Pincode,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

type policyView struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	CoverageAmount      string              `json:"coverageAmount"`
	BasePremium         string              `json:"basePremium"`
	CoverageType        entity.CoverageType `json:"coverageType"`
	Features            []string            `json:"features"`
	EligibilityCriteria []string            `json:"eligibilityCriteria"`
	Exclusions          []string            `json:"exclusions"`
	ClaimProcess        string              `json:"claimProcess"`
	IsActive            bool                `json:"isActive"`
	CreatedAt           time.Time           `json:"createdAt"`
}

func toPolicyView(policy *entity.Policy) *policyView {
	return &policyView{
		ID:                  policy.ID,
		Name:                policy.Name,
		Description:         policy.Description,
		CoverageAmount:      policy.CoverageAmount.StringFixed(2),
		BasePremium:         policy.BasePremium.StringFixed(2),
		CoverageType:        policy.CoverageType,
		Features:            policy.Features,
		EligibilityCriteria: policy.EligibilityCriteria,
		Exclusions:          policy.Exclusions,
		ClaimProcess:        policy.ClaimProcess,
		IsActive:            policy.IsActive,
		CreatedAt:           policy.CreatedAt,
	}
}

func toPolicyViews(policies []*entity.Policy) []*policyView {
	views := make([]*policyView, 0, len(policies))
	for _, policy := range policies {
		views = append(views, toPolicyView(policy))
	}

	return views
}

type weatherRiskView struct {
	ID              string           `json:"id"`
	State           string           `json:"state"`
	District        string           `json:"district,omitempty"`
	RiskLevel       entity.RiskLevel `json:"riskLevel"`
	AverageRainfall string           `json:"averageRainfall"`
	FloodRisk       int              `json:"floodRisk"`
	DroughtRisk     int              `json:"droughtRisk"`
	CycloneRisk     int              `json:"cycloneRisk"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

func toWeatherRiskViews(risks []*entity.WeatherRisk) []*weatherRiskView {
	views := make([]*weatherRiskView, 0, len(risks))
	for _, risk := range risks {
		views = append(views, &weatherRiskView{
			ID:              risk.ID,
			State:           risk.State,
			District:        risk.District,
			RiskLevel:       risk.RiskLevel,
			AverageRainfall: risk.AverageRainfall.StringFixed(2),
			FloodRisk:       risk.FloodRisk,
			DroughtRisk:     risk.DroughtRisk,
			CycloneRisk:     risk.CycloneRisk,
			LastUpdated:     risk.LastUpdated,
		})
	}

	return views
}

type applicationView struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	PolicyID          string                   `json:"policyId"`
	ApplicationData   map[string]any           `json:"applicationData"`
	CalculatedPremium string                   `json:"calculatedPremium"`
	Status            entity.ApplicationStatus `json:"status"`
	ApplicationDate   time.Time                `json:"applicationDate"`
	ApprovalDate      *time.Time               `json:"approvalDate,omitempty"`
}

func toApplicationView(application *entity.PolicyApplication) *applicationView {
	return &applicationView{
		ID:                application.ID,
		UserID:            application.UserID,
		PolicyID:          application.PolicyID,
		ApplicationData:   application.ApplicationData,
		CalculatedPremium: application.CalculatedPremium.StringFixed(2),
		Status:            application.Status,
		ApplicationDate:   application.ApplicationDate,
		ApprovalDate:      application.ApprovalDate,
	}
}

func toApplicationViews(applications []*entity.PolicyApplication) []*applicationView {
	views := make([]*applicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, toApplicationView(application))
	}

	return views
}

type inquiryView struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	PhoneNumber string               `json:"phoneNumber,omitempty"`
	Subject     string               `json:"subject"`
	Message     string               `json:"message"`
	Status      entity.InquiryStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func toInquiryView(inquiry *entity.ContactInquiry) *inquiryView {
	return &inquiryView{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		PhoneNumber: inquiry.PhoneNumber,
		Subject:     inquiry.Subject,
		Message:     inquiry.Message,
		Status:      inquiry.Status,
		CreatedAt:   inquiry.CreatedAt,
	}
}
