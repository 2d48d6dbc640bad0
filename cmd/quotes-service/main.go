package main

import (
	"context"
	"fmt"
	"os"

	"github.com/travelpro/quotes-service/internal/config"
	"github.com/travelpro/quotes-service/internal/db"
	"github.com/travelpro/quotes-service/internal/excel"
	httphandler "github.com/travelpro/quotes-service/internal/http"
	"github.com/travelpro/quotes-service/internal/logger"
	"github.com/travelpro/quotes-service/internal/pdf"
	"github.com/travelpro/quotes-service/internal/registry"
	"github.com/travelpro/quotes-service/internal/repository"
	"github.com/travelpro/quotes-service/internal/service"
	"github.com/travelpro/quotes-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	var quotationStore service.QuotationStore = store.NewMemory()
	if cfg.DB.DSN != "" {
		database, err := db.New(cfg.DB.DSN, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		quotationStore = repository.NewQuotationRepository(database)
	} else {
		log.Info().Msg("no DB_DSN configured, quotations stay in memory")
	}

	session := registry.New()
	quoteService := service.NewQuoteService(session, quotationStore, pdf.NewGenerator(), excel.NewGenerator(), cfg, log)

	if err := quoteService.LoadArchive(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load quotation archive")
	}

	handler := httphandler.NewHandler(quoteService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting quotes service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
