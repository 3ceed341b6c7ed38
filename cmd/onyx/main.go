package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "onyx",
	Short: "onyx is a personal daily-tracking backend",
	Long: "onyx serves the daily-tracking API: schedule blocks, supplements, meals,\n" +
		"daily logs, gym programs, and state import/export, backed by SQLite.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
