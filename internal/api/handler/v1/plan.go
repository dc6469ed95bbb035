package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spintowin/spinwheel-api/internal/domain"
)

type PlanService interface {
	ListPlans() []domain.Plan
}

type PlanHandler struct {
	svc PlanService
}

func NewPlanHandler(svc PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// HandleListPlans godoc
// @Summary      List subscription tiers
// @Tags         plans
// @Produce      json
// @Success      200  {object}  []domain.Plan
// @Router       /plans [get]
func (h *PlanHandler) HandleListPlans(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ListPlans())
}
