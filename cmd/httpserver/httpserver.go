// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/analyticsdelivery"
	"github.com/evermed/finvalid/internal/analyticsjob"
	"github.com/evermed/finvalid/internal/auditdelivery"
	"github.com/evermed/finvalid/internal/auditrepo"
	"github.com/evermed/finvalid/internal/auditservice"
	"github.com/evermed/finvalid/internal/bulkservice"
	"github.com/evermed/finvalid/internal/metricsservice"
	"github.com/evermed/finvalid/internal/middleware"
	"github.com/evermed/finvalid/internal/outbound"
	"github.com/evermed/finvalid/internal/recordrepo"
	"github.com/evermed/finvalid/internal/riskservice"
	"github.com/evermed/finvalid/internal/validationdelivery"
	"github.com/evermed/finvalid/internal/validationservice"
	"github.com/evermed/finvalid/pkg/configpkg"
	"github.com/evermed/finvalid/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB       *sql.DB
	Engine   *gin.Engine
	Config   configpkg.Config
	Snapshot *analyticsjob.Snapshot
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	recordRepo := recordrepo.NewRepoPGS(conn)
	auditRepo := auditrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	feeTrigger := outbound.NewWebhookFeeTrigger(config.FeeWebhookURL)
	notifier := outbound.NewLogNotifier(logger)

	validationService := validationservice.New(recordRepo, feeTrigger, notifier)
	bulkService := bulkservice.New(validationService)
	riskService := riskservice.New(recordRepo, config.RiskHighValueMinor)
	metricsService := metricsservice.New(recordRepo, config.ProcessingHoursFallback)
	auditService := auditservice.New(auditRepo)

	snapshot := analyticsjob.NewSnapshot(riskService,
		analyticsdelivery.DefaultRiskWindowDays, config.RiskCacheInterval, logger)

	validationHandler := validationdelivery.NewHandler(validationService, bulkService)
	analyticsHandler := analyticsdelivery.NewHandler(snapshot, metricsService)
	auditHandler := auditdelivery.NewHandler(auditService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/records/:id/transitions", validationHandler.Transition)
	authRoutes.POST("/records/transitions", validationHandler.TransitionMany)

	authRoutes.GET("/analytics/risk", analyticsHandler.Risk)
	authRoutes.GET("/analytics/efficiency", analyticsHandler.Efficiency)
	authRoutes.GET("/analytics/trends", analyticsHandler.Trends)

	authRoutes.GET("/records/:id/audit", auditHandler.History)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("transitionaction", validationdelivery.ValidAction)
		if err != nil {
			return nil, errors.New("cannot register transition action validator")
		}
	}

	server := &Server{
		DB:       conn,
		Engine:   engine,
		Config:   config,
		Snapshot: snapshot,
	}

	return server, nil
}
