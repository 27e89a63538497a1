package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-expense-vault/internal/commands"
	"github.com/MKhiriev/go-expense-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	rootCmd := commands.NewRootCommand(buildInfo)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
