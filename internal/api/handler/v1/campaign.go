package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spintowin/spinwheel-api/internal/api/handler/v1/request"
	"github.com/spintowin/spinwheel-api/internal/api/handler/v1/response"
	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/service"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.Campaign, error)
	ListCampaigns(ctx context.Context, shopID string) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	SetStatus(ctx context.Context, id uint, status domain.CampaignStatus) error
	DeleteCampaign(ctx context.Context, id uint) error
}

type AnalyticsService interface {
	CampaignAnalytics(ctx context.Context, campaignID uint, days int) (domain.CampaignAnalytics, error)
	ShopAnalytics(ctx context.Context, shopID string) (domain.ShopAnalytics, error)
}

type CampaignHandler struct {
	svc       CampaignService
	analytics AnalyticsService
}

func NewCampaignHandler(svc CampaignService, analytics AnalyticsService) *CampaignHandler {
	return &CampaignHandler{
		svc:       svc,
		analytics: analytics,
	}
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign
// @Description  Creates a campaign with its prize table; rejected when the table could never produce an outcome
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body  request.CreateCampaignRequest  true  "request body"
// @Success      201  {object}  response.CampaignResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns [post]
func (h *CampaignHandler) HandleCreateCampaign(ctx *gin.Context) {
	var req request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := campaignFromCreateRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCampaign(ctx.Request.Context(), campaign)
	if err != nil {
		if isValidationErr(err) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCampaignResponse(created))
}

// HandleGetCampaign godoc
// @Summary      Get a campaign
// @Tags         admin
// @Produce      json
// @Param        campaignID  path  int  true  "Campaign ID"
// @Success      200  {object}  response.CampaignResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns/{campaignID} [get]
func (h *CampaignHandler) HandleGetCampaign(ctx *gin.Context) {
	id, ok := campaignIDParam(ctx)
	if !ok {
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCampaignResponse(campaign))
}

// HandleListCampaigns godoc
// @Summary      List a shop's campaigns
// @Tags         admin
// @Produce      json
// @Param        shopId  query  string  true  "Shop ID"
// @Success      200  {object}  []response.CampaignResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns [get]
func (h *CampaignHandler) HandleListCampaigns(ctx *gin.Context) {
	shopID := ctx.Query("shopId")
	if shopID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("shopId query parameter is required")))
		return
	}

	campaigns, err := h.svc.ListCampaigns(ctx.Request.Context(), shopID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampaigns -> h.svc.ListCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewCampaignsResponse(campaigns))
}

// HandleUpdateCampaign godoc
// @Summary      Update a campaign
// @Description  Applies partial changes; omitted fields keep their stored values
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        campaignID  path  int                            true  "Campaign ID"
// @Param        request     body  request.UpdateCampaignRequest  true  "request body"
// @Success      200  {object}  response.CampaignResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns/{campaignID} [put]
func (h *CampaignHandler) HandleUpdateCampaign(ctx *gin.Context) {
	id, ok := campaignIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	// Merge before validating so the service always sees the full
	// post-merge state.
	if err = mergeUpdateRequest(&campaign, req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCampaign(ctx.Request.Context(), campaign)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
		case isValidationErr(err):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateCampaign -> h.svc.UpdateCampaign -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewCampaignResponse(updated))
}

// HandleSetStatus godoc
// @Summary      Change a campaign's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        campaignID  path  int                       true  "Campaign ID"
// @Param        request     body  request.SetStatusRequest  true  "request body"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns/{campaignID}/status [put]
func (h *CampaignHandler) HandleSetStatus(ctx *gin.Context) {
	id, ok := campaignIDParam(ctx)
	if !ok {
		return
	}

	var req request.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SetStatus(ctx.Request.Context(), id, domain.CampaignStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
		case errors.Is(err, service.ErrInvalidStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSetStatus -> h.svc.SetStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// HandleDeleteCampaign godoc
// @Summary      Delete a campaign
// @Tags         admin
// @Produce      json
// @Param        campaignID  path  int  true  "Campaign ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns/{campaignID} [delete]
func (h *CampaignHandler) HandleDeleteCampaign(ctx *gin.Context) {
	id, ok := campaignIDParam(ctx)
	if !ok {
		return
	}

	if err := h.svc.DeleteCampaign(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCampaign -> h.svc.DeleteCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCampaignAnalytics godoc
// @Summary      Campaign analytics
// @Description  Spin and redemption aggregates over the trailing window (default 30 days)
// @Tags         admin
// @Produce      json
// @Param        campaignID  path   int  true   "Campaign ID"
// @Param        days        query  int  false  "Trailing window in days"
// @Success      200  {object}  domain.CampaignAnalytics
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/campaigns/{campaignID}/analytics [get]
func (h *CampaignHandler) HandleCampaignAnalytics(ctx *gin.Context) {
	id, ok := campaignIDParam(ctx)
	if !ok {
		return
	}

	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("days must be a positive integer")))
		return
	}

	analytics, err := h.analytics.CampaignAnalytics(ctx.Request.Context(), id, days)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleCampaignAnalytics -> h.analytics.CampaignAnalytics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}

// HandleShopAnalytics godoc
// @Summary      Shop analytics
// @Tags         admin
// @Produce      json
// @Param        shopID  path  string  true  "Shop ID"
// @Success      200  {object}  domain.ShopAnalytics
// @Failure      500  {object}  response.Err
// @Router       /admin/shops/{shopID}/analytics [get]
func (h *CampaignHandler) HandleShopAnalytics(ctx *gin.Context) {
	analytics, err := h.analytics.ShopAnalytics(ctx.Request.Context(), ctx.Param("shopID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleShopAnalytics -> h.analytics.ShopAnalytics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}

func campaignIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("campaignID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid campaign ID: %w", err)))
		return 0, false
	}

	return uint(id), true
}

func campaignFromCreateRequest(req request.CreateCampaignRequest) (domain.Campaign, error) {
	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return domain.Campaign{}, err
	}

	status := domain.CampaignStatusActive
	if req.Status != "" {
		status = domain.CampaignStatus(req.Status)
	}

	campaign := domain.Campaign{
		ShopID:              req.ShopID,
		Name:                req.Name,
		Status:              status,
		StartDate:           startDate,
		EndDate:             endDate,
		SpinsLimit:          req.SpinsLimit,
		RequireVerification: true,
		Prizes:              prizesFromInputs(req.Prizes),
	}
	if req.RequireVerification != nil {
		campaign.RequireVerification = *req.RequireVerification
	}

	return campaign, nil
}

func mergeUpdateRequest(campaign *domain.Campaign, req request.UpdateCampaignRequest) error {
	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Status != nil {
		campaign.Status = domain.CampaignStatus(*req.Status)
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		campaign.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		campaign.EndDate = endDate
	}
	if req.SpinsLimit != nil {
		campaign.SpinsLimit = *req.SpinsLimit
	}
	if req.RequireVerification != nil {
		campaign.RequireVerification = *req.RequireVerification
	}
	if req.Prizes != nil {
		campaign.Prizes = prizesFromInputs(req.Prizes)
	}

	return nil
}

const dateLayout = "2006-01-02"

func parseDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}

	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}

	return startDate, endDate, nil
}

func prizesFromInputs(inputs []request.PrizeInput) []domain.Prize {
	prizes := make([]domain.Prize, 0, len(inputs))
	for _, in := range inputs {
		prizes = append(prizes, domain.Prize{
			Label:  in.Label,
			Kind:   domain.PrizeKind(in.Kind),
			Value:  in.Value,
			Weight: in.Weight,
		})
	}

	return prizes
}

func isValidationErr(err error) bool {
	return errors.Is(err, service.ErrInvalidDates) ||
		errors.Is(err, service.ErrInvalidSpinsLimit) ||
		errors.Is(err, service.ErrInvalidPrizeKind) ||
		errors.Is(err, service.ErrNegativeWeight) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, service.ErrNoEligiblePrizes)
}
