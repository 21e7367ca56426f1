package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anyproto/any-deck/app"
)

var rootCmd = &cobra.Command{
	Use:   "anydeck",
	Short: "Multi-account columned identity client",
	Long: `Anydeck shows decks of columns for every account you add. Accounts are
managed from the accounts column: switch with enter, remove with d, add with a.`,
	Version: app.VersionDescription(),
}

func init() {
	rootCmd.AddCommand(runCmd, keygenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
