package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/spintowin/spinwheel-api/docs"
	v1 "github.com/spintowin/spinwheel-api/internal/api/handler/v1"
	"github.com/spintowin/spinwheel-api/internal/api/middleware"
	"github.com/spintowin/spinwheel-api/internal/config"
	"github.com/spintowin/spinwheel-api/internal/metrics"
	"github.com/spintowin/spinwheel-api/internal/notifier"
	"github.com/spintowin/spinwheel-api/internal/repository"
	"github.com/spintowin/spinwheel-api/internal/repository/dao"
	"github.com/spintowin/spinwheel-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	metrics.Register()
	s.MountMiddlewares()

	campaignSvc := s.initCampaignService(db)
	spinHandler := s.initSpinHandler(db, campaignSvc)
	campaignHandler := s.initCampaignHandler(db, campaignSvc)
	planHandler := v1.NewPlanHandler(service.NewPlanService())
	s.MountHandlers(spinHandler, campaignHandler, planHandler)

	return s
}

func (s *Server) initCampaignService(db *gorm.DB) *service.CampaignService {
	campaignDAO := dao.NewCampaignDAO(db)
	repo := repository.NewCampaignRepository(campaignDAO)

	return service.NewCampaignService(repo)
}

func (s *Server) initSpinHandler(db *gorm.DB, campaignSvc *service.CampaignService) *v1.SpinHandler {
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	ledger := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	challengeRepo := repository.NewChallengeRepository(dao.NewChallengeDAO(db))
	n := notifier.NewLogNotifier()

	spinSvc := service.NewSpinService(campaignRepo, ledger, n, s.Config.Spin.CodeLength)
	verificationSvc := service.NewVerificationService(
		challengeRepo,
		n,
		[]byte(s.Config.API.SpinTokenSigningKey),
		time.Duration(s.Config.Spin.ChallengeTTLMinutes)*time.Minute,
		time.Duration(s.Config.Spin.SpinTokenTTLMinutes)*time.Minute,
		s.Config.Spin.ChallengeMaxAttempts,
	)

	return v1.NewSpinHandler(s.Config.API, spinSvc, verificationSvc, campaignSvc)
}

func (s *Server) initCampaignHandler(db *gorm.DB, campaignSvc *service.CampaignService) *v1.CampaignHandler {
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	ledger := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	analyticsSvc := service.NewAnalyticsService(ledger, campaignRepo)

	return v1.NewCampaignHandler(campaignSvc, analyticsSvc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains, s.Config.API.Environment))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(spinHandler *v1.SpinHandler, campaignHandler *v1.CampaignHandler, planHandler *v1.PlanHandler) {
	const basePath = "/api/v1"

	widget := s.Router.Group(basePath)
	{
		widget.GET("/campaigns/:campaignID/wheel", spinHandler.HandleGetWheel)
		widget.POST("/challenge", spinHandler.HandleSendChallenge)
		widget.POST("/verify", spinHandler.HandleVerify)
		widget.POST("/spin", spinHandler.HandleSpin)
		widget.GET("/plans", planHandler.HandleListPlans)
	}

	admin := s.Router.Group(basePath + "/admin")
	{
		admin.POST("/campaigns", campaignHandler.HandleCreateCampaign)
		admin.GET("/campaigns", campaignHandler.HandleListCampaigns)
		admin.GET("/campaigns/:campaignID", campaignHandler.HandleGetCampaign)
		admin.PUT("/campaigns/:campaignID", campaignHandler.HandleUpdateCampaign)
		admin.PUT("/campaigns/:campaignID/status", campaignHandler.HandleSetStatus)
		admin.DELETE("/campaigns/:campaignID", campaignHandler.HandleDeleteCampaign)
		admin.GET("/campaigns/:campaignID/analytics", campaignHandler.HandleCampaignAnalytics)
		admin.GET("/shops/:shopID/analytics", campaignHandler.HandleShopAnalytics)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Spin Wheel API"
	docs.SwaggerInfo.Description = "Fair prize selection and redemption backend for spin-to-win widgets."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
