package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded synthesis runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("stack", "", "Filter by stack name")
	historyCmd.Flags().String("account", "", "Filter by account")
	historyCmd.Flags().String("region", "", "Filter by region")
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stackName, _ := cmd.Flags().GetString("stack")
	account, _ := cmd.Flags().GetString("account")
	region, _ := cmd.Flags().GetString("region")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := initStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListSynths(cmd.Context(), model.HistoryFilter{
		Stack:   stackName,
		Account: account,
		Region:  region,
		Limit:   limit,
	})
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No synthesis runs recorded. Use 'budgetbot synth' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TIMESTAMP\tSTACK\tACCOUNT\tREGION\tRESOURCES\tMISSING\tDIGEST\n")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Stack, r.Account, r.Region,
			r.ResourceCount, r.MissingLookup, shortDigest(r.Digest),
		)
	}
	return w.Flush()
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
