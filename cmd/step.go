package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bhairavmehta/MathTeacherAgent/internal/stepcheck"
	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Validate a learning step",
	Long: "Validates one intermediate student action against the expected\n" +
		"trajectory. The --data payload is JSON, schema-checked per tool:\n" +
		"  number_line:      {\"current_steps\": [5,6], \"proposed_step\": 7}\n" +
		"  practice_problem: {\"user_input\": \"8\", \"step_number\": 1}\n" +
		"  calculator:       {\"expression\": \"5+3\", \"operation_sequence\": [\"5\",\"+\",\"3\"]}",
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, _ := cmd.Flags().GetString("tool")
		problem, _ := cmd.Flags().GetString("problem")
		operation, _ := cmd.Flags().GetString("operation")
		data, _ := cmd.Flags().GetString("data")

		req, err := stepcheck.DecodeRequest(stepcheck.ToolType(tool), problem, operation, json.RawMessage(data))
		if err != nil {
			return err
		}
		req.SessionID = sessionID(cmd)

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		validator := stepcheck.WithLogging(stepcheck.New(), st.EventRepo())
		resp := validator.ValidateLearningStep(req)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	stepCmd.Flags().String("tool", "", "Tool type: number_line, practice_problem, or calculator")
	stepCmd.Flags().String("problem", "", "Math problem being worked on, e.g. '5 + 3'")
	stepCmd.Flags().String("operation", "", "Operation name, e.g. addition")
	stepCmd.Flags().String("data", "{}", "Tool-specific validation payload (JSON)")
	stepCmd.MarkFlagRequired("tool")
}
