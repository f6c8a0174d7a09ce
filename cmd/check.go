package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bhairavmehta/MathTeacherAgent/internal/ratelimit"
	"github.com/bhairavmehta/MathTeacherAgent/internal/toolresp"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [message]",
	Short: "Validate a tool-completion message",
	Long: "Runs a tool-completion message through the response parser. The message\n" +
		"is taken from the argument, or from stdin when no argument is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, err := readMessage(args)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		validator := toolresp.WithLogging(
			toolresp.New(ratelimit.New(ratelimit.DefaultConfig())),
			st.EventRepo(),
		)
		outcome := validator.ValidateResponse(toolresp.Text(message), sessionID(cmd))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(outcome)
		}
		printOutcome(outcome)
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the outcome as JSON")
}

// readMessage takes the message from args or stdin.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func printOutcome(o toolresp.Outcome) {
	if o.IsValid {
		format := "structured"
		if !o.Data.StructuredFormat {
			format = "legacy"
		}
		fmt.Printf("valid (%s)\n", format)
		fmt.Printf("  method:  %s\n", o.Data.Method)
		fmt.Printf("  problem: %s\n", o.Data.Problem)
		fmt.Printf("  answer:  %s\n", o.Data.Answer)
	} else {
		fmt.Println("invalid")
		for _, e := range o.Errors {
			fmt.Printf("  error: %s\n", e)
		}
	}
	if o.Security {
		fmt.Println("  SECURITY: injection signature detected")
	}
	for _, w := range o.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
