package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andib0/onyx/internal/config"
	"github.com/andib0/onyx/internal/db"
)

var seedConfigPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the food, supplement and gym program catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(seedConfigPath)
		if err != nil {
			return err
		}
		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer database.Close()

		summary, err := database.Seed()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "foods: %d\n", summary.Foods)
		fmt.Fprintf(out, "supplement refs: %d\n", summary.SupplementRefs)
		fmt.Fprintf(out, "gym programs: %d\n", summary.GymPrograms)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "config", "", "path to config.toml")
	rootCmd.AddCommand(seedCmd)
}
