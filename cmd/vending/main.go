package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/vending-machine/internal/application/payment"
	"github.com/jhoicas/vending-machine/internal/application/receipt"
	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	domainpayment "github.com/jhoicas/vending-machine/internal/domain/payment"
	"github.com/jhoicas/vending-machine/internal/infrastructure/card"
	"github.com/jhoicas/vending-machine/internal/infrastructure/catalogfile"
	"github.com/jhoicas/vending-machine/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/vending-machine/internal/infrastructure/pdf"
	"github.com/jhoicas/vending-machine/internal/interfaces/console"
	"github.com/jhoicas/vending-machine/pkg/clock"
	"github.com/jhoicas/vending-machine/pkg/config"
	"github.com/jhoicas/vending-machine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando máquina expendedora")

	seed := catalog.Default()
	if cfg.Catalog.Path != "" {
		seed, err = catalogfile.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("cargar catálogo")
		}
	}
	cat, err := catalog.New(seed.Categories)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo inválido")
	}
	stock, err := memory.ForCatalog(cat, seed.Stock)
	if err != nil {
		log.Fatal().Err(err).Msg("stock inválido")
	}

	policy := domainpayment.CardPolicy{
		Prefix:    cfg.Card.IDPrefix,
		MinLength: cfg.Card.IDMinLength,
		Limit:     cfg.Card.Limit,
	}
	fundingUC := payment.NewFundingUseCase(card.NewGateway(policy, log), log)
	session := vending.NewSession(cat, stock, clock.RealClock{}, log)

	machine := console.NewMachine(
		console.NewStreamIO(os.Stdin, os.Stdout),
		session, fundingUC,
		console.RetryPolicy{MaxAttempts: cfg.Input.MaxAttempts},
		log,
	)

	// SIGINT/SIGTERM se revisan entre ciclos; la lectura bloqueante termina con EOF (Ctrl+D).
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := machine.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cerrar sesión")
		return
	}

	if cfg.Receipt.PDFPath != "" {
		receiptUC := receipt.NewUseCase(infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))
		doc, err := receiptUC.Export(ctx, summary)
		if err != nil {
			log.Error().Err(err).Msg("generar recibo PDF")
			return
		}
		if err := os.WriteFile(cfg.Receipt.PDFPath, doc, 0o644); err != nil {
			log.Error().Err(err).Str("path", cfg.Receipt.PDFPath).Msg("guardar recibo PDF")
			return
		}
		log.Info().Str("path", cfg.Receipt.PDFPath).Msg("recibo PDF guardado")
	}
}
