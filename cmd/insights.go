package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bhairavmehta/MathTeacherAgent/internal/mathexpr"
	"github.com/bhairavmehta/MathTeacherAgent/internal/stepcheck"
	"github.com/bhairavmehta/MathTeacherAgent/internal/store"
	"github.com/spf13/cobra"
)

// operationNames maps normalized operators to operation names for the
// common-mistake catalog.
var operationNames = map[string]string{
	"+": "addition",
	"-": "subtraction",
	"*": "multiplication",
	"/": "division",
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show learning insights from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		rawFreq, err := repo.MistakeFrequency(ctx)
		if err != nil {
			return err
		}
		steps, err := repo.QueryStepEvents(ctx, store.QueryOpts{})
		if err != nil {
			return err
		}
		securityCount, err := repo.SecurityEventCount(ctx)
		if err != nil {
			return err
		}

		freq := make(map[stepcheck.MistakeType]int, len(rawFreq))
		for k, v := range rawFreq {
			freq[stepcheck.MistakeType(k)] = v
		}
		insights := stepcheck.InsightsFromFrequency(freq, len(steps))

		fmt.Printf("step validations: %d\n", insights.TotalValidations)
		if len(insights.MistakeFrequency) > 0 {
			fmt.Println("mistake frequency:")
			for mistake, count := range insights.MistakeFrequency {
				fmt.Printf("  %-24s %d\n", mistake, count)
			}
		}
		for _, s := range insights.Insights {
			fmt.Println("insight:", s)
		}
		for _, r := range insights.Recommendations {
			fmt.Println("recommendation:", r)
		}
		seen := map[string]bool{}
		for _, e := range steps {
			if expr := mathexpr.Parse(e.Problem); expr != nil {
				seen[operationNames[expr.Operator]] = true
			}
		}
		for _, op := range []string{"addition", "subtraction", "multiplication", "division"} {
			if !seen[op] {
				continue
			}
			if patterns := stepcheck.CommonMistakes(op); len(patterns) > 0 {
				fmt.Printf("watch for (%s): %s\n", op, strings.Join(patterns, ", "))
			}
		}
		if securityCount > 0 {
			fmt.Printf("SECURITY: %d injection signature(s) detected across sessions\n", securityCount)
		}
		return nil
	},
}
