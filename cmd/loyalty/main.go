package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-loyalty-keeper/internal/client"
	"github.com/MKhiriev/go-loyalty-keeper/internal/config"
	"github.com/MKhiriev/go-loyalty-keeper/internal/logger"
	"github.com/MKhiriev/go-loyalty-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("go-loyalty-keeper")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-loyalty-keeper", cfg.App.LogFile)
	defer log.Close()

	log.Debug().
		Str("rpc", cfg.Ledger.RPCURL).
		Str("contract", cfg.Ledger.ContractAddress).
		Str("relayer", cfg.Relayer.HTTPAddress).
		Str("listen", cfg.Server.HTTPAddress).
		Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}
	defer app.Close()

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
