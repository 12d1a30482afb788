package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminBookingsHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/admin_bookings"
	adminScentsHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/admin_scents"
	adminUnavailableHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/admin_unavailable"
	autocompleteAddressHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/autocomplete_address"
	getBookedSlotsHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/get_booked_slots"
	getPricingHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/get_pricing"
	getScentsHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/get_scents"
	submitBookingHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/submit_booking"
	uploadAttachmentHandler "github.com/tjsdetailing/booking-service/internal/api/handlers/upload_attachment"
	"github.com/tjsdetailing/booking-service/internal/api/middleware"
	"github.com/tjsdetailing/booking-service/internal/config"
	bookingRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/booking"
	pricingRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/pricing"
	scentRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/scent"
	unavailableRepo "github.com/tjsdetailing/booking-service/internal/infra/storage/unavailable"
	"github.com/tjsdetailing/booking-service/internal/integrations/blobstore"
	"github.com/tjsdetailing/booking-service/internal/integrations/geocoder"
	"github.com/tjsdetailing/booking-service/internal/integrations/smsgateway"
	availabilityService "github.com/tjsdetailing/booking-service/internal/service/availability"
	bookingsService "github.com/tjsdetailing/booking-service/internal/service/bookings"
	pricingService "github.com/tjsdetailing/booking-service/internal/service/pricing"
	scentsService "github.com/tjsdetailing/booking-service/internal/service/scents"
	unavailableService "github.com/tjsdetailing/booking-service/internal/service/unavailable"
	submitBookingUC "github.com/tjsdetailing/booking-service/internal/usecase/submit_booking"
	"github.com/tjsdetailing/booking-service/pkg/dbmetrics"
	"github.com/tjsdetailing/booking-service/pkg/logger"
	"github.com/tjsdetailing/booking-service/pkg/metrics"
	"github.com/tjsdetailing/booking-service/pkg/simpletxmanager"
	"github.com/tjsdetailing/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking service for %s...", cfg.Booking.BusinessName)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients. SMS and blob storage run in degraded mode when
	// unconfigured: bookings still work, notifications and uploads do not.
	smsClient := smsgateway.NewClient(
		cfg.SMS.BaseURL,
		cfg.SMS.AccountSID,
		cfg.SMS.AuthToken,
		cfg.SMS.FromNumber,
		cfg.Booking.ContactNumber,
		time.Duration(cfg.SMS.Timeout)*time.Second,
		log,
	)
	if !smsClient.Configured() {
		log.Warn("SMS gateway not configured, owner notifications disabled")
	}

	geoClient := geocoder.NewClient(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.APIKey,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
	)

	blobClient := blobstore.NewClient(
		cfg.Blob.BaseURL,
		cfg.Blob.Token,
		time.Duration(cfg.Blob.Timeout)*time.Second,
	)
	if !blobClient.Configured() {
		log.Warn("Blob store not configured, attachment uploads disabled")
	}

	var (
		bookingRepository     *bookingRepo.Repository
		unavailableRepository *unavailableRepo.Repository
		scentRepository       *scentRepo.Repository
		pricingRepository     *pricingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		unavailableRepository = unavailableRepo.NewRepository(wrappedDB)
		scentRepository = scentRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		unavailableRepository = unavailableRepo.NewRepository(db)
		scentRepository = scentRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	availabilitySvc := availabilityService.NewService(bookingRepository, unavailableRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	unavailableSvc := unavailableService.NewService(unavailableRepository, log)
	scentsSvc := scentsService.NewService(scentRepository, log)
	pricingSvc := pricingService.NewService(pricingRepository, log)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		unavailableRepository,
		txMgr,
		smsClient,
		log,
		submitBookingUC.Config{
			MinLeadHours: cfg.Booking.MinLeadHours,
			MaxDaysAhead: cfg.Booking.MaxDaysAhead,
			BaseURL:      cfg.Booking.BaseURL,
		},
	)

	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(availabilitySvc, log)
	getScents := getScentsHandler.NewHandler(scentsSvc, log)
	getPricing := getPricingHandler.NewHandler(pricingSvc, log)
	autocompleteAddress := autocompleteAddressHandler.NewHandler(geoClient, log)
	uploadAttachment := uploadAttachmentHandler.NewHandler(blobClient, cfg.Blob.MaxFileSizeMB, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingsSvc, log)
	adminUnavailable := adminUnavailableHandler.NewHandler(unavailableSvc, log)
	adminScents := adminScentsHandler.NewHandler(scentsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the booking form and calendar.
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/scents", getScents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing", getPricing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/address", autocompleteAddress.Handle).Methods(http.MethodGet)
	api.HandleFunc("/upload", uploadAttachment.Handle).Methods(http.MethodPost)

	// Admin routes: the owner dashboard, behind the token check.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/bookings", adminBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", adminBookings.HandleUpdate).Methods(http.MethodPatch)

	admin.HandleFunc("/unavailable", adminUnavailable.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/unavailable", adminUnavailable.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/unavailable", adminUnavailable.HandleRemove).Methods(http.MethodDelete)

	admin.HandleFunc("/scents", adminScents.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/scents", adminScents.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/scents", adminScents.HandleToggle).Methods(http.MethodPatch)
	admin.HandleFunc("/scents", adminScents.HandleDelete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
