package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/service"
)

type stubCampaignService struct {
	campaign    domain.Campaign
	err         error
	gotCampaign domain.Campaign
	gotStatus   domain.CampaignStatus
}

func (s *stubCampaignService) CreateCampaign(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	s.gotCampaign = campaign

	if s.err != nil {
		return domain.Campaign{}, s.err
	}

	return campaign, nil
}

func (s *stubCampaignService) GetCampaign(_ context.Context, _ uint) (domain.Campaign, error) {
	return s.campaign, s.err
}

func (s *stubCampaignService) ListCampaigns(_ context.Context, _ string) ([]domain.Campaign, error) {
	return []domain.Campaign{s.campaign}, s.err
}

func (s *stubCampaignService) UpdateCampaign(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	s.gotCampaign = campaign

	if s.err != nil {
		return domain.Campaign{}, s.err
	}

	return campaign, nil
}

func (s *stubCampaignService) SetStatus(_ context.Context, _ uint, status domain.CampaignStatus) error {
	s.gotStatus = status

	return s.err
}

func (s *stubCampaignService) DeleteCampaign(_ context.Context, _ uint) error {
	return s.err
}

type stubAnalyticsService struct {
	gotDays int
}

func (s *stubAnalyticsService) CampaignAnalytics(_ context.Context, campaignID uint, days int) (domain.CampaignAnalytics, error) {
	s.gotDays = days

	return domain.CampaignAnalytics{CampaignID: campaignID, TotalSpins: 100, TotalCodes: 40}, nil
}

func (s *stubAnalyticsService) ShopAnalytics(_ context.Context, shopID string) (domain.ShopAnalytics, error) {
	return domain.ShopAnalytics{ShopID: shopID}, nil
}

func newCampaignTestRouter(svc CampaignService, analytics AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCampaignHandler(svc, analytics)

	router := gin.New()
	router.POST("/admin/campaigns", handler.HandleCreateCampaign)
	router.GET("/admin/campaigns", handler.HandleListCampaigns)
	router.GET("/admin/campaigns/:campaignID", handler.HandleGetCampaign)
	router.PUT("/admin/campaigns/:campaignID", handler.HandleUpdateCampaign)
	router.PUT("/admin/campaigns/:campaignID/status", handler.HandleSetStatus)
	router.DELETE("/admin/campaigns/:campaignID", handler.HandleDeleteCampaign)
	router.GET("/admin/campaigns/:campaignID/analytics", handler.HandleCampaignAnalytics)
	router.GET("/admin/shops/:shopID/analytics", handler.HandleShopAnalytics)

	return router
}

const createBody = `{
	"shopId": "shop-1",
	"name": "Summer Sale",
	"startDate": "2025-06-01",
	"endDate": "2025-07-01",
	"spinsLimit": 1000,
	"prizes": [
		{"label": "10% off", "kind": "percentage-discount", "value": 10, "weight": 30},
		{"label": "No win", "kind": "no-win", "weight": 70}
	]
}`

func TestHandleCreateCampaign(t *testing.T) {
	svc := &stubCampaignService{}
	router := newCampaignTestRouter(svc, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	// Status defaults to active when omitted, and the gate defaults on.
	assert.Equal(t, domain.CampaignStatusActive, svc.gotCampaign.Status)
	assert.True(t, svc.gotCampaign.RequireVerification)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), svc.gotCampaign.StartDate)
	assert.Len(t, svc.gotCampaign.Prizes, 2)
}

// An explicit requireVerification false must survive the create path; the
// gate is a per-campaign toggle, not a hardcoded default.
func TestHandleCreateCampaign_Ungated(t *testing.T) {
	svc := &stubCampaignService{}
	router := newCampaignTestRouter(svc, &stubAnalyticsService{})

	body := strings.Replace(createBody, `"spinsLimit": 1000,`, `"spinsLimit": 1000,
	"requireVerification": false,`, 1)
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.False(t, svc.gotCampaign.RequireVerification)
}

func TestHandleCreateCampaign_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing prizes", body: `{"shopId":"s","name":"Sale","startDate":"2025-06-01","endDate":"2025-07-01","spinsLimit":10}`},
		{name: "bad prize kind", body: `{"shopId":"s","name":"Sale","startDate":"2025-06-01","endDate":"2025-07-01","spinsLimit":10,"prizes":[{"label":"x","kind":"mystery","weight":1}]}`},
		{name: "bad date format", body: `{"shopId":"s","name":"Sale","startDate":"06/01/2025","endDate":"2025-07-01","spinsLimit":10,"prizes":[{"label":"x","kind":"no-win","weight":1}]}`},
		{name: "not json", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCampaignTestRouter(&stubCampaignService{}, &stubAnalyticsService{})

			req := httptest.NewRequest(http.MethodPost, "/admin/campaigns", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestHandleCreateCampaign_RejectedTable(t *testing.T) {
	router := newCampaignTestRouter(&stubCampaignService{err: service.ErrNoEligiblePrizes}, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleUpdateCampaign_MergesPartial(t *testing.T) {
	stored := domain.Campaign{
		ID:         1,
		ShopID:     "shop-1",
		Name:       "Summer Sale",
		Status:     domain.CampaignStatusActive,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		SpinsLimit: 1000,
		Prizes:     []domain.Prize{{ID: 1, Label: "10% off", Kind: domain.PrizeKindPercentage, Weight: 1}},
	}
	svc := &stubCampaignService{campaign: stored}
	router := newCampaignTestRouter(svc, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/campaigns/1",
		strings.NewReader(`{"name":"Autumn Sale","spinsLimit":500}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	// Sent fields are applied, everything else keeps its stored value.
	assert.Equal(t, "Autumn Sale", svc.gotCampaign.Name)
	assert.Equal(t, 500, svc.gotCampaign.SpinsLimit)
	assert.Equal(t, stored.StartDate, svc.gotCampaign.StartDate)
	assert.Len(t, svc.gotCampaign.Prizes, 1)
}

func TestHandleSetStatus(t *testing.T) {
	svc := &stubCampaignService{}
	router := newCampaignTestRouter(svc, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/campaigns/1/status",
		strings.NewReader(`{"status":"ended"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, domain.CampaignStatusEnded, svc.gotStatus)
}

func TestHandleSetStatus_Invalid(t *testing.T) {
	router := newCampaignTestRouter(&stubCampaignService{}, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/campaigns/1/status",
		strings.NewReader(`{"status":"paused"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleListCampaigns_RequiresShopID(t *testing.T) {
	router := newCampaignTestRouter(&stubCampaignService{}, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/campaigns", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/campaigns?shopId=shop-1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandleCampaignAnalytics(t *testing.T) {
	analytics := &stubAnalyticsService{}
	router := newCampaignTestRouter(&stubCampaignService{}, analytics)

	req := httptest.NewRequest(http.MethodGet, "/admin/campaigns/1/analytics?days=7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 7, analytics.gotDays)

	var body domain.CampaignAnalytics
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, int64(100), body.TotalSpins)
}

func TestHandleCampaignAnalytics_BadWindow(t *testing.T) {
	router := newCampaignTestRouter(&stubCampaignService{}, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/campaigns/1/analytics?days=-3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleDeleteCampaign(t *testing.T) {
	router := newCampaignTestRouter(&stubCampaignService{}, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/campaigns/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
