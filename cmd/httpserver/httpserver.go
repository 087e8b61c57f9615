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

	"github.com/go-wallet/walletd/internal/exchangeratedelivery"
	"github.com/go-wallet/walletd/internal/exchangeraterepo"
	"github.com/go-wallet/walletd/internal/exchangerateservice"
	"github.com/go-wallet/walletd/internal/interestdelivery"
	"github.com/go-wallet/walletd/internal/interestrepo"
	"github.com/go-wallet/walletd/internal/interestservice"
	"github.com/go-wallet/walletd/internal/middleware"
	"github.com/go-wallet/walletd/internal/schedulepkg"
	"github.com/go-wallet/walletd/internal/transactiondelivery"
	"github.com/go-wallet/walletd/internal/transactionrepo"
	"github.com/go-wallet/walletd/internal/transactionservice"
	"github.com/go-wallet/walletd/internal/transferdelivery"
	"github.com/go-wallet/walletd/internal/transferrepo"
	"github.com/go-wallet/walletd/internal/transferservice"
	"github.com/go-wallet/walletd/internal/walletdelivery"
	"github.com/go-wallet/walletd/internal/walletrepo"
	"github.com/go-wallet/walletd/internal/walletservice"
	"github.com/go-wallet/walletd/pkg/configpkg"
	"github.com/go-wallet/walletd/pkg/moneypkg"
)

// Server holds db connection, handlers router, background scheduler and
// configuration.
type Server struct {
	DB        *sql.DB
	Engine    *gin.Engine
	Scheduler *schedulepkg.Scheduler
	Config    configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	walletRepo := walletrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	interestRepo := interestrepo.NewRepoPGS(conn)
	rateRepo := exchangeraterepo.NewRepoPGS(conn)

	walletService := walletservice.New(walletRepo)
	transactionService := transactionservice.New(transactionRepo, walletService)
	transferService := transferservice.New(transferRepo, walletService)

	interestService, err := interestservice.New(interestRepo, config.InterestDailyRate)
	if err != nil {
		return nil, errors.New("cannot initialize interest service")
	}

	rateService := exchangerateservice.New(rateRepo, exchangerateservice.Config{
		MinRate:            config.RateMin,
		MaxRate:            config.RateMax,
		WindowOpenUTC:      config.RateWindowOpenUTC,
		WindowCloseUTC:     config.RateWindowCloseUTC,
		MinInterval:        config.RateMinInterval,
		MaxInterval:        config.RateMaxInterval,
		LiveSamplesMin:     config.RateLiveSamplesMin,
		LiveSamplesMax:     config.RateLiveSamplesMax,
		BackfillSamplesMin: config.RateBackfillSamplesMin,
		BackfillSamplesMax: config.RateBackfillSamplesMax,
	})

	walletHandler := walletdelivery.NewHandler(walletService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	transferHandler := transferdelivery.NewHandler(transferService)
	interestHandler := interestdelivery.NewHandler(interestService)
	rateHandler := exchangeratedelivery.NewHandler(rateService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/wallets", walletHandler.Create)
	engine.GET("/wallets/:id", walletHandler.Get)
	engine.GET("/wallets/username/:username", walletHandler.GetByUsername)
	engine.PUT("/wallets/:id/balance", walletHandler.UpdateBalance)
	engine.DELETE("/wallets/:id", walletHandler.Delete)

	engine.GET("/wallets/:id/transactions", transactionHandler.History)
	engine.GET("/wallets/:id/stats", transactionHandler.Stats)
	engine.GET("/transactions/:id", transactionHandler.Get)

	engine.POST("/transfers", transferHandler.Create)
	engine.POST("/transfers/by-username", transferHandler.CreateByUsername)
	engine.POST("/third-party/payments", transferHandler.Payment)
	engine.POST("/third-party/receipts", transferHandler.Receipt)

	engine.POST("/interests/run", interestHandler.Run)

	engine.GET("/exchange-rates/latest", rateHandler.Latest)
	engine.GET("/exchange-rates", rateHandler.List)
	engine.POST("/exchange-rates/refresh", rateHandler.Refresh)
	engine.POST("/exchange-rates/backfill", rateHandler.Backfill)
	engine.DELETE("/exchange-rates", rateHandler.Purge)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", moneypkg.ValidAmount)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	scheduler := schedulepkg.New(logger)
	scheduler.Add(schedulepkg.Job{
		Name:    "daily-interest-accrual",
		HourUTC: config.InterestRunHourUTC,
		Run:     interestService.Run,
	})
	scheduler.Add(schedulepkg.Job{
		Name:    "daily-rate-generation",
		HourUTC: 0,
		Run:     rateService.Run,
	})

	server := &Server{
		DB:        conn,
		Engine:    engine,
		Scheduler: scheduler,
		Config:    config,
	}

	return server, nil
}
