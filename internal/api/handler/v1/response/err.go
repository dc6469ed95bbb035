package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Machine-readable reasons the widget and the admin console branch on.
// Each failure stays distinguishable; nothing is collapsed into a generic
// error.
const (
	ReasonNotFound             = "NotFound"
	ReasonCampaignClosed       = "CampaignClosed"
	ReasonSpinCapReached       = "SpinCapReached"
	ReasonAlreadyParticipated  = "AlreadyParticipated"
	ReasonNoEligiblePrizes     = "NoEligiblePrizes"
	ReasonExpired              = "Expired"
	ReasonMismatch             = "Mismatch"
	ReasonNoActiveChallenge    = "NoActiveChallenge"
	ReasonVerificationRequired = "VerificationRequired"
)

type Err struct {
	Err        error  `json:"-"`
	StatusCode int    `json:"-"`
	Reason     string `json:"reason,omitempty"`
	ErrorMsg   string `json:"error"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("status %d - %s", e.StatusCode, e.ErrorMsg)
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error", zap.Error(e.Err))
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Reason:     ReasonNotFound,
		ErrorMsg:   fmt.Sprintf("%v with %v (%v) not found", what, key, value),
	}
}

func ErrForbidden(reason string, err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusForbidden,
		Reason:     reason,
		ErrorMsg:   err.Error(),
	}
}

func ErrUnauthorized(reason string, err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusUnauthorized,
		Reason:     reason,
		ErrorMsg:   err.Error(),
	}
}

func ErrConflict(reason string, err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusConflict,
		Reason:     reason,
		ErrorMsg:   err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   "internal server error",
	}
}
