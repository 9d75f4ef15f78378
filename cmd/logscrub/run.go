package logscrub

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logscrub/logscrub/internal/audit"
	"github.com/logscrub/logscrub/internal/config"
	"github.com/logscrub/logscrub/internal/engine"
	"github.com/logscrub/logscrub/internal/logger"
	"github.com/logscrub/logscrub/internal/report"
	"github.com/logscrub/logscrub/pkg/core"
)

var (
	flagSource      string
	flagOutput      string
	flagRules       string
	flagIgnore      string
	flagPlaceholder string
	flagStripLength bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sanitize a directory tree",
		RunE:  runSanitise,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagSource, "source", "s", "", `directory containing files to sanitize (default "source")`)
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", `directory to write sanitized files to (default "results")`)
	cmd.Flags().StringVar(&flagRules, "rules", "", `path to the rules file (default "main.rule")`)
	cmd.Flags().StringVar(&flagIgnore, "ignore", "", `file with glob patterns to skip (default "ignore.list")`)
	cmd.Flags().StringVar(&flagPlaceholder, "placeholder", "", `replacement token for detected matches (default "*")`)
	cmd.Flags().BoolVar(&flagStripLength, "strip-length", false, "replace each match with the bare placeholder instead of maintaining length")
}

func runSanitise(_ *cobra.Command, _ []string) error {
	if flagSelfUpdate {
		return selfUpdate()
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	cwd, _ := os.Getwd()
	if c, err := config.LoadLocal(cwd); err == nil {
		lcfg = c
	}

	source := pickString(flagSource, lcfg.Source, gcfg.Source)
	if source == "" {
		source = "source"
	}
	output := pickString(flagOutput, lcfg.Output, gcfg.Output)
	if output == "" {
		output = "results"
	}
	rulesPath := pickString(flagRules, lcfg.Rules, gcfg.Rules)
	if rulesPath == "" {
		rulesPath = "main.rule"
	}
	ignorePath := pickString(flagIgnore, lcfg.Ignore, gcfg.Ignore)
	if ignorePath == "" {
		ignorePath = "ignore.list"
	}
	placeholder := pickString(flagPlaceholder, lcfg.Placeholder, gcfg.Placeholder)
	if placeholder == "" {
		placeholder = "*"
	}

	maintain := true
	switch {
	case flagStripLength:
		maintain = false
	case lcfg.MaintainLength != nil:
		maintain = *lcfg.MaintainLength
	case gcfg.MaintainLength != nil:
		maintain = *gcfg.MaintainLength
	}

	noColor := flagNoColor || pickBool(false, lcfg.NoColor, gcfg.NoColor)
	log := logger.New(flagVerbose, noColor)
	defer func() { _ = log.Sync() }()

	cfg := engine.Config{
		SourceDir:      source,
		OutputDir:      output,
		RulesPath:      rulesPath,
		IgnorePath:     ignorePath,
		Placeholder:    placeholder,
		MaintainLength: maintain,
		Threads:        pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DryRun:         flagDryRun,
		NoCache:        flagNoCache || pickBool(false, lcfg.NoCache, gcfg.NoCache),
		Logger:         log,
	}
	res, err := engine.SanitiseWithStats(cfg)
	if err != nil {
		return err
	}

	if flagJSON {
		return core.MarshalResult(os.Stdout, res)
	}
	report.PrintSummary(os.Stdout, res, report.PrintOptions{NoColor: noColor, DryRun: flagDryRun})

	if !flagDryRun {
		if err := audit.NewLog(output).LogRun(audit.NewRunRecord(source, output, res)); err != nil {
			log.Debug("audit record not written", zap.Error(err))
		}
	}
	return nil
}
