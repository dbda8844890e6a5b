package main

import (
	"os"

	"github.com/spf13/cobra"

	"itm/internal/interfaces/cli/migrate"
	"itm/internal/interfaces/cli/server"
)

// @title itm API
// @version 1.0
// @description Incident ticket manager: users, projects, clients and tickets.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "itm",
		Short: "itm - incident ticket manager",
		Long:  `itm tracks incident tickets raised against clients inside projects, with a built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
