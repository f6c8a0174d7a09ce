package cmd

import (
	"github.com/bhairavmehta/MathTeacherAgent/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathteacher",
	Short: "Validation core for the math tutoring agent",
	Long: "Mathteacher provides deterministic parsing, sanitization, and step validation\n" +
		"for the interactive math tutoring agent. The conversational layer calls\n" +
		"into this core; these commands exercise it directly.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHTEACHER_DB env var)")
	rootCmd.PersistentFlags().String("session", "default", "Session id used for rate limiting and event logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHTEACHER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

// sessionID returns the --session flag value.
func sessionID(cmd *cobra.Command) string {
	s, _ := cmd.Flags().GetString("session")
	if s == "" {
		s = "default"
	}
	return s
}
