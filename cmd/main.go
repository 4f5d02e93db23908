package main

import (
	"exrates/internal/app"
	"flag"

	"github.com/sirupsen/logrus"
)

// @title Exchange Rates API
// @version 1.0
// @description Exchange rates and conversions from ECB and IMF reference data.
// @BasePath /api/v1
func main() {
	configFile := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	if err := app.Run(*configFile); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
