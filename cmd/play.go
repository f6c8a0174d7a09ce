package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bhairavmehta/MathTeacherAgent/internal/app"
	"github.com/bhairavmehta/MathTeacherAgent/internal/ratelimit"
	"github.com/bhairavmehta/MathTeacherAgent/internal/toolresp"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive validation playground",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session := sessionID(cmd)
		if session == "default" {
			// Fresh session per playground run so rate-limit experiments
			// don't bleed into each other.
			session = uuid.NewString()[:8]
		}

		validator := toolresp.WithLogging(
			toolresp.New(ratelimit.New(ratelimit.DefaultConfig())),
			st.EventRepo(),
		)

		return app.Run(app.Options{
			Responses: validator,
			SessionID: session,
		})
	},
}
