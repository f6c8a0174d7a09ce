package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded validation events",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Event log deleted:", dbPath)
		return nil
	},
}
