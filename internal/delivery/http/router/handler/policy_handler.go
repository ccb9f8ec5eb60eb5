package handler

import (
	"log/slog"
	"net/http"

	"monsoon/internal/delivery/http/response"
	"monsoon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PolicyHandler holds dependencies for policy catalog handlers.
type PolicyHandler struct {
	policyUC usecase.PolicyUsecase
	logger   *slog.Logger
}

// NewPolicyHandler is the constructor for PolicyHandler, injected by Fx.
func NewPolicyHandler(policyUC usecase.PolicyUsecase, logger *slog.Logger) *PolicyHandler {
	return &PolicyHandler{
		policyUC: policyUC,
		logger:   logger,
	}
}

// ListPolicies returns the active catalog entries.
func (h *PolicyHandler) ListPolicies(c echo.Context) error {
	policies, err := h.policyUC.ListActivePolicies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPolicyViews(policies), "Policies retrieved successfully")
}

// GetPolicy returns one catalog entry by id.
func (h *PolicyHandler) GetPolicy(c echo.Context) error {
	policy, err := h.policyUC.GetPolicy(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPolicyView(policy), "Policy retrieved successfully")
}
