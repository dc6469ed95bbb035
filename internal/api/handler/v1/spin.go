package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spintowin/spinwheel-api/internal/api/handler/v1/request"
	"github.com/spintowin/spinwheel-api/internal/api/handler/v1/response"
	"github.com/spintowin/spinwheel-api/internal/config"
	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/pkg/jwthelper"
	"github.com/spintowin/spinwheel-api/internal/service"
)

type SpinService interface {
	Spin(ctx context.Context, campaignID uint, identity, verifiedIdentity string) (domain.SpinResult, error)
}

type VerificationService interface {
	IssueChallenge(ctx context.Context, identity string) (string, error)
	Verify(ctx context.Context, identity, submittedCode string) (string, error)
}

type WheelService interface {
	GetWheel(ctx context.Context, id uint) (domain.Campaign, error)
}

type SpinHandler struct {
	conf  *config.APIConfig
	svc   SpinService
	vSvc  VerificationService
	wheel WheelService
}

func NewSpinHandler(conf *config.APIConfig, svc SpinService, vSvc VerificationService, wheel WheelService) *SpinHandler {
	return &SpinHandler{
		conf:  conf,
		svc:   svc,
		vSvc:  vSvc,
		wheel: wheel,
	}
}

// HandleSendChallenge godoc
// @Summary      Request a verification code
// @Description  Issues a one-time code for the email, replacing any pending code, and delivers it via the notifier
// @Tags         spin
// @Accept       json
// @Produce      json
// @Param        request  body  request.ChallengeRequest  true  "request body"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /challenge [post]
func (h *SpinHandler) HandleSendChallenge(ctx *gin.Context) {
	var req request.ChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// The code travels only through the notifier, never the response.
	if _, err := h.vSvc.IssueChallenge(ctx.Request.Context(), req.Email); err != nil {
		err = fmt.Errorf("v1.HandleSendChallenge -> h.vSvc.IssueChallenge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// HandleVerify godoc
// @Summary      Verify a one-time code
// @Description  Consumes the pending challenge and returns a short-lived token proving the verified identity
// @Tags         spin
// @Accept       json
// @Produce      json
// @Param        request  body  request.VerifyRequest  true  "request body"
// @Success      200  {object}  response.VerifyResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /verify [post]
func (h *SpinHandler) HandleVerify(ctx *gin.Context) {
	var req request.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.vSvc.Verify(ctx.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChallengeExpired):
			response.RenderErr(ctx, response.ErrUnauthorized(response.ReasonExpired, err))
		case errors.Is(err, service.ErrCodeMismatch):
			response.RenderErr(ctx, response.ErrUnauthorized(response.ReasonMismatch, err))
		case errors.Is(err, service.ErrNoActiveChallenge):
			response.RenderErr(ctx, response.ErrUnauthorized(response.ReasonNoActiveChallenge, err))
		default:
			err = fmt.Errorf("v1.HandleVerify -> h.vSvc.Verify -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.VerifyResponse{Token: token})
}

// HandleSpin godoc
// @Summary      Spin the wheel
// @Description  Runs the spin flow and returns the outcome with a claim code for winning spins
// @Tags         spin
// @Accept       json
// @Produce      json
// @Param        request  body  request.SpinRequest  true  "request body"
// @Success      200  {object}  response.SpinResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /spin [post]
// @Security     BearerAuth
func (h *SpinHandler) HandleSpin(ctx *gin.Context) {
	var req request.SpinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Spin(ctx.Request.Context(), req.CampaignID, req.Email, h.verifiedIdentity(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", req.CampaignID))
		case errors.Is(err, service.ErrVerificationRequired):
			response.RenderErr(ctx, response.ErrUnauthorized(response.ReasonVerificationRequired, err))
		case errors.Is(err, service.ErrCampaignClosed):
			response.RenderErr(ctx, response.ErrForbidden(response.ReasonCampaignClosed, err))
		case errors.Is(err, service.ErrSpinCapReached):
			response.RenderErr(ctx, response.ErrForbidden(response.ReasonSpinCapReached, err))
		case errors.Is(err, service.ErrAlreadyParticipated):
			response.RenderErr(ctx, response.ErrForbidden(response.ReasonAlreadyParticipated, err))
		case errors.Is(err, service.ErrNoEligiblePrizes):
			response.RenderErr(ctx, response.ErrConflict(response.ReasonNoEligiblePrizes, err))
		default:
			err = fmt.Errorf("v1.HandleSpin -> h.svc.Spin -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewSpinResponse(result))
}

// HandleGetWheel godoc
// @Summary      Get the wheel configuration
// @Description  Returns the prize labels, kinds and values for rendering; weights stay server-side
// @Tags         spin
// @Produce      json
// @Param        campaignID  path  int  true  "Campaign ID"
// @Success      200  {object}  response.WheelResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/wheel [get]
func (h *SpinHandler) HandleGetWheel(ctx *gin.Context) {
	campaignID, err := strconv.ParseUint(ctx.Param("campaignID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid campaign ID: %w", err)))
		return
	}

	campaign, err := h.wheel.GetWheel(ctx.Request.Context(), uint(campaignID))
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
			return
		}

		err = fmt.Errorf("v1.HandleGetWheel -> h.wheel.GetWheel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewWheelResponse(campaign))
}

// verifiedIdentity extracts the identity proven by a bearer token, or empty
// when the caller presented none. Gating itself is decided per campaign in
// the service.
func (h *SpinHandler) verifiedIdentity(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	identity, err := jwthelper.ParseToken([]byte(h.conf.SpinTokenSigningKey), token)
	if err != nil {
		return ""
	}

	return identity
}
