package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/config"
	"github.com/kouassidev/ferme/internal/repository/flatfile"
	"github.com/kouassidev/ferme/internal/repository/mongodb"
	"github.com/kouassidev/ferme/internal/repository/sheets"
	"github.com/kouassidev/ferme/internal/scheduler"
	"github.com/kouassidev/ferme/internal/server/handlers"
	"github.com/kouassidev/ferme/internal/server/router"
	alertsvc "github.com/kouassidev/ferme/internal/service/alerts"
	contactsvc "github.com/kouassidev/ferme/internal/service/contacts"
	cropsvc "github.com/kouassidev/ferme/internal/service/crops"
	dashboardsvc "github.com/kouassidev/ferme/internal/service/dashboard"
	equipmentsvc "github.com/kouassidev/ferme/internal/service/equipment"
	financesvc "github.com/kouassidev/ferme/internal/service/finance"
	inventorysvc "github.com/kouassidev/ferme/internal/service/inventory"
	livestocksvc "github.com/kouassidev/ferme/internal/service/livestock"
	workforcesvc "github.com/kouassidev/ferme/internal/service/workforce"
	"github.com/kouassidev/ferme/pkg/clients/notify"
	"github.com/kouassidev/ferme/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := flatfile.NewStore(cfg.Storage.DataDir, baseLogger.Named("repo.flatfile"))
	if err != nil {
		baseLogger.Fatal("failed to init record store", zap.Error(err))
	}

	financeSvc := financesvc.NewService(store, baseLogger.Named("svc.finance"))
	inventorySvc := inventorysvc.NewService(store, financeSvc, baseLogger.Named("svc.inventory"))
	livestockSvc := livestocksvc.NewService(store, baseLogger.Named("svc.livestock"))
	cropSvc := cropsvc.NewService(store, baseLogger.Named("svc.crops"))
	contactSvc := contactsvc.NewService(store, baseLogger.Named("svc.contacts"))
	equipmentSvc := equipmentsvc.NewService(store, financeSvc, baseLogger.Named("svc.equipment"))

	workforceSvc := workforcesvc.NewService(store, baseLogger.Named("svc.workforce"))
	workforceSvc.SubscribeWorkerRemoved(workforcesvc.NewTaskReassigner(store, baseLogger.Named("svc.workforce.reassign")))

	windows := alertsvc.Windows{
		AnimalHealth: cfg.Alerts.AnimalHealthWindow,
		CropHarvest:  cfg.Alerts.CropHarvestWindow,
		CropSowing:   cfg.Alerts.CropSowingWindow,
		Task:         cfg.Alerts.TaskWindow,
		Equipment:    cfg.Alerts.EquipmentWindow,
	}
	alertSvc := alertsvc.NewService(store, windows, baseLogger.Named("svc.alerts"))
	dashboardSvc := dashboardsvc.NewService(store, alertSvc, baseLogger.Named("svc.dashboard"))

	// Digest sinks are all optional; absent configuration leaves them nil and
	// the scheduler skips them.
	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Notify.WebhookURL)
		baseLogger.Info("digest webhook enabled")
	}

	var sheetsRepo sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("sheets digest export enabled")
	}

	var archive mongodb.Repository
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
		baseLogger.Info("snapshot archive enabled")
	}

	sched, err := scheduler.NewScheduler(cfg.Digest, dashboardSvc, notifier, sheetsRepo, archive, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	engine := router.New(router.Handlers{
		Stock:     handlers.NewStockHandler(inventorySvc, baseLogger.Named("handlers.stock")),
		Finance:   handlers.NewFinanceHandler(financeSvc, baseLogger.Named("handlers.finance")),
		Livestock: handlers.NewLivestockHandler(livestockSvc, baseLogger.Named("handlers.livestock")),
		Crops:     handlers.NewCropsHandler(cropSvc, baseLogger.Named("handlers.crops")),
		Workforce: handlers.NewWorkforceHandler(workforceSvc, baseLogger.Named("handlers.workforce")),
		Equipment: handlers.NewEquipmentHandler(equipmentSvc, baseLogger.Named("handlers.equipment")),
		Contacts:  handlers.NewContactsHandler(contactSvc, baseLogger.Named("handlers.contacts")),
		Dashboard: handlers.NewDashboardHandler(dashboardSvc, alertSvc, baseLogger.Named("handlers.dashboard")),
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
