package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"intake-insights-go/internal/api"
	"intake-insights-go/internal/config"
	"intake-insights-go/internal/dataset"
	"intake-insights-go/internal/events"
	"intake-insights-go/internal/extractor"
	"intake-insights-go/internal/livecalls"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/openmic"
	"intake-insights-go/internal/patients"
	"intake-insights-go/internal/processor"
	"intake-insights-go/internal/store"
)

func main() {
	_ = godotenv.Load() // loads .env

	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)
	log.WithField("service", "intake-insights-go").WithField("port", cfg.Port).Info("starting service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open call log store")
	}
	defer st.Close()

	var pub events.Publisher = events.Nop{}
	if cfg.NatsURL != "" {
		nc, err := events.NewNATS(cfg.NatsURL, cfg.NatsToken, log)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to nats")
		}
		pub = nc
		log.WithField("nats_url", cfg.NatsURL).Info("publishing call events")
	}
	defer pub.Close()

	var summarizer extractor.Summarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = extractor.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, "")
		log.WithField("model", cfg.OpenAIModel).Info("call summaries enabled")
	}

	dir := patients.Default()
	if cfg.PatientsPath != "" {
		records, err := dataset.LoadPatients(cfg.PatientsPath, log)
		if err != nil {
			log.WithError(err).Fatal("failed to load patient workbook")
		}
		dir.Upsert(records...)
		log.WithField("patients_path", cfg.PatientsPath).WithField("loaded", len(records)).Info("patient workbook loaded")
	}

	bots := openmic.New(openmic.Options{
		BaseURL:       cfg.OpenMicBaseURL,
		APIKey:        cfg.OpenMicAPIKey,
		Timeout:       cfg.OpenMicTimeout,
		PublicBaseURL: cfg.PublicBaseURL,
		Log:           log,
	})
	if !bots.Configured() {
		log.Warn("OPENMIC_API_KEY not set; bot management disabled")
	}

	srv := api.NewServer(api.Deps{
		Processor: processor.New(st, pub, summarizer, log),
		Store:     st,
		Patients:  dir,
		Bots:      bots,
		LiveCalls: livecalls.NewDemo(time.Now()),
		Log:       log,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.WithField("addr", httpServer.Addr).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// openStore picks Postgres when DATABASE_URL is set, memory otherwise.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (store.CallLogStore, error) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL not set; call logs kept in memory")
		return store.NewMemory(), nil
	}
	pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database connected")
	return pg, nil
}
