package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/litrevu/litrevu/internal/interfaces/cli/migrate"
	"github.com/litrevu/litrevu/internal/interfaces/cli/seed"
	"github.com/litrevu/litrevu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "litrevu",
		Short: "LITRevu - book and article reviews among friends",
		Long:  `LITRevu lets readers request reviews, publish them and follow each other. This binary runs the web server, database migrations and demo seeding.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
