package main

import (
	"context"
	"os"

	"github.com/MKhiriev/notepad-sync/internal/client"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("notepad-sync")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := client.Run(context.Background(), os.Args[1:], buildInfo, log); err != nil {
		os.Exit(1)
	}
}
