package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bhairavmehta/MathTeacherAgent/internal/mathexpr"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate a basic math expression",
	Long: "Sanitizes and evaluates a two-operand expression (+, -, *, /) and\n" +
		"prints the kid-friendly explanation the tutor would give.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := mathexpr.Calculate(args[0])

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(calc)
		}

		if calc.Err != "" {
			fmt.Println("error:", calc.Err)
			fmt.Println(calc.Explanation)
			return nil
		}
		fmt.Printf("%s = %g\n", calc.Expression, *calc.Result)
		fmt.Println(calc.Explanation)
		return nil
	},
}

func init() {
	calcCmd.Flags().Bool("json", false, "Print the result as JSON")
}
