package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/stack"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the declared budgets and notification rules",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Slack channel:  %s (workspace from %s, channel from %s)\n",
		stack.SlackChannelConfigurationName, stack.SlackWorkspaceParameter, stack.SlackChannelParameter)
	fmt.Fprintf(out, "Alert topic:    %s (publish: %s)\n\n", stack.AlertTopicName, stack.BudgetsServicePrincipal)

	for _, b := range model.Budgets() {
		fmt.Fprintf(out, "%-34s %s, %.2f %s, thresholds %s\n",
			b.Name+":", b.TimeUnit, b.Limit.Amount, b.Limit.Unit, formatThresholds(b.Thresholds()))
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "BUDGET\tUNIT\tLIMIT\tSIGNAL\tTHRESHOLD\tALERT AT\tSUBSCRIBER\n")
	for _, b := range model.Budgets() {
		for _, r := range b.Rules {
			fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\t%s %.0f%%\t%.2f %s\t%s:%s\n",
				b.Name, b.TimeUnit, b.Limit.Amount, b.Limit.Unit,
				r.Type, r.Comparison, r.Threshold,
				b.AlertAmount(r), b.Limit.Unit,
				r.SubscriptionType, stack.AlertTopicName,
			)
		}
	}
	return w.Flush()
}

func formatThresholds(thresholds []float64) string {
	parts := make([]string, 0, len(thresholds))
	for _, t := range thresholds {
		parts = append(parts, fmt.Sprintf("%.0f%%", t))
	}
	return strings.Join(parts, "/")
}
