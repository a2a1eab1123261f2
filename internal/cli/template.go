package cli

import (
	"fmt"
	"os"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/synth"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the synthesized CloudFormation template",
	RunE:  runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringP("format", "f", "json", "Output format (json, yaml)")
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	format, _ := cmd.Flags().GetString("format")

	// The assembly is only a vehicle for the template here.
	outdir, err := os.MkdirTemp("", "budgetbot-template-")
	if err != nil {
		return fmt.Errorf("create assembly dir: %w", err)
	}
	defer os.RemoveAll(outdir)

	opts := synthOptions(cfg)
	opts.OutDir = outdir

	res, err := synth.Synthesize(opts)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	for _, key := range res.MissingContext {
		logger.Warn("context lookup unresolved, placeholder value used", "key", key)
	}

	return synth.Encode(cmd.OutOrStdout(), res.Template, synth.Format(format))
}
