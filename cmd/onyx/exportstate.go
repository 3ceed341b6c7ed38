package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andib0/onyx/internal/config"
	"github.com/andib0/onyx/internal/db"
)

var (
	exportConfigPath string
	exportUserEmail  string
	exportOut        string
)

// export-state is an operational backup path: it writes the same document
// the sync export endpoint serves, without going through HTTP.
var exportStateCmd = &cobra.Command{
	Use:   "export-state",
	Short: "Write a user's full state document to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportUserEmail == "" {
			return fmt.Errorf("--user-email is required")
		}
		cfg, err := config.Load(exportConfigPath)
		if err != nil {
			return err
		}
		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer database.Close()

		user, _, err := database.GetUserByEmail(exportUserEmail)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", exportUserEmail, err)
		}
		doc, err := database.ExportState(user.ID)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		if exportOut == "" || exportOut == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportStateCmd.Flags().StringVar(&exportConfigPath, "config", "", "path to config.toml")
	exportStateCmd.Flags().StringVar(&exportUserEmail, "user-email", "", "email of the user to export")
	exportStateCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportStateCmd)
}
