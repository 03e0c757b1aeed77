package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Willsatroyd/Update-Hosts/internal/app"
	"github.com/Willsatroyd/Update-Hosts/internal/config"
	"github.com/Willsatroyd/Update-Hosts/internal/update"
)

var rootCmd = &cobra.Command{
	Use:   "update-hosts",
	Short: "Rebuild the system hosts file from domain blocklists",
	Long:  "Update-Hosts downloads plaintext hosts-format blocklists, merges them with a local base hosts file, points every blocked domain at a configured local address, and flushes the resolver cache",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		app.NewUpdateCommand(),
		app.NewSourcesCommand(),
		app.NewShowCommand(),
		app.NewRestoreCommand(),
		app.NewFlushCommand(),
		app.NewServiceCommand(),
	)
}

func main() {
	if err := config.InitConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(update.ExitCode(err))
	}
}
