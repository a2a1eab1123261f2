package cli

import (
	"fmt"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/synth"
	"github.com/spf13/cobra"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize the cloud assembly",
	Long: `Synthesize the stack into a cloud assembly directory. This is the command
the cdk CLI runs (see cdk.json). Each run is recorded in the history ledger.`,
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)
	addSynthFlags(synthCmd)
}

func addSynthFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("outdir", "o", "", "Cloud assembly output directory (default: $CDK_OUTDIR or a temp dir)")
	cmd.Flags().Bool("no-history", false, "Do not record this run in the history ledger")
}

func runSynth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if outdir, _ := cmd.Flags().GetString("outdir"); outdir != "" {
		cfg.Synth.OutDir = outdir
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}

	opts := synthOptions(cfg)
	res, err := synth.Synthesize(opts)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}

	logger.Info("stack synthesized",
		"stack", res.StackName,
		"account", opts.Account,
		"region", opts.Region,
		"resources", res.ResourceCount,
		"digest", res.Digest,
		"assembly", res.AssemblyDir,
	)
	for _, key := range res.MissingContext {
		logger.Warn("context lookup unresolved, placeholder value used", "key", key)
	}

	if !cfg.History.Enabled {
		return nil
	}

	store, err := initStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	prev, err := store.LatestSynth(ctx, res.StackName, opts.Account, opts.Region)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if prev != nil && prev.Digest != res.Digest {
		logger.Warn("template changed since last synthesis",
			"stack", res.StackName,
			"previous", prev.Digest,
			"previous_at", prev.Timestamp,
			"current", res.Digest,
		)
	}

	record := &model.SynthRecord{
		Stack:         res.StackName,
		Account:       opts.Account,
		Region:        opts.Region,
		Digest:        res.Digest,
		ResourceCount: res.ResourceCount,
		MissingLookup: len(res.MissingContext),
		OutDir:        res.AssemblyDir,
	}
	if err := store.RecordSynth(ctx, record); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	logger.Debug("synthesis recorded", "id", record.ID)

	return nil
}
