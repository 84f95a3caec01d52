// Command certify runs the equivalence certification suite: every registered
// workload's optimized variant is executed against its baseline and the
// outputs are compared under the configured tolerance policy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LynnColeArt/parity"
)

var (
	logger *zap.Logger

	flagConfig    string
	flagDataDir   string
	flagReportDir string
	flagTolerance float64
	flagWorkers   int
	flagSeed      uint64
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "certify",
	Short: "Certify that optimized kernels match their baselines",
	Long: `certify runs pairs of independently implemented routines - a baseline
and a performance-optimized rewrite - over identical inputs and proves
that they produce observably identical results.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

var runCmd = &cobra.Command{
	Use:   "run [workload...]",
	Short: "Run certification for the named workloads (default: all)",
	RunE:  runCertification,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered workloads",
	RunE:  listWorkloads,
}

var gendataCmd = &cobra.Command{
	Use:   "gendata",
	Short: "Generate the workload input datasets",
	RunE:  generateData,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the certify version",
	Run: func(cmd *cobra.Command, args []string) {
		version, sum := parity.Version()
		if version == "" {
			fmt.Println("certify (devel)")
			return
		}
		fmt.Printf("certify %s %s\n", version, sum)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "dataset directory")
	rootCmd.PersistentFlags().StringVar(&flagReportDir, "report-dir", "", "report output directory")
	rootCmd.PersistentFlags().Float64Var(&flagTolerance, "tolerance", 0, "absolute float tolerance")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "parallel workers for optimized variants")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	gendataCmd.Flags().Uint64Var(&flagSeed, "seed", 42, "dataset generation seed")

	rootCmd.AddCommand(runCmd, listCmd, gendataCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if flagDebug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

// loadConfig merges the optional config file with flag overrides.
func loadConfig() (parity.Config, error) {
	cfg := parity.DefaultConfig()
	if flagConfig != "" {
		var err error
		cfg, err = parity.LoadConfig(flagConfig)
		if err != nil {
			return parity.Config{}, err
		}
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagReportDir != "" {
		cfg.ReportDir = flagReportDir
	}
	if flagTolerance > 0 {
		cfg.Tolerance = flagTolerance
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	return cfg, nil
}

// ensureDataset generates inputs on first use so `certify run` works from a
// clean checkout.
func ensureDataset(cfg parity.Config) (*parity.Dataset, error) {
	ds := &parity.Dataset{Dir: cfg.DataDir}
	if _, err := os.Stat(ds.StringPairsPath()); err == nil {
		return ds, nil
	}
	logger.Info("Generating dataset", zap.String("dir", cfg.DataDir))
	return parity.GenerateDataset(cfg.DataDir, flagSeed)
}

func runCertification(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := ensureDataset(cfg)
	if err != nil {
		return err
	}

	suite := parity.NewSuite(parity.NewValidator(cfg.Tolerance), ds, cfg.Workers)

	selected := args
	if len(selected) == 0 {
		selected = cfg.Workloads
	}
	if len(selected) == 0 {
		selected = suite.Names()
	}

	report := parity.NewReport(cfg.Tolerance, cfg.Workers)
	for _, name := range selected {
		logger.Debug("Certifying workload", zap.String("workload", name))
		result, err := suite.Run(name)
		if err != nil {
			return err
		}
		report.Add(parity.WorkloadOutcome{Name: name, Result: result})
		if result.Passed {
			logger.Info("Workload certified", zap.String("workload", name))
		} else {
			logger.Error("Workload disagreement",
				zap.String("workload", name),
				zap.String("diagnostic", result.Message))
		}
	}

	path, err := report.WriteFile(cfg.ReportDir)
	if err != nil {
		return err
	}
	logger.Info("Report written",
		zap.String("path", path),
		zap.String("summary", report.Summary()))

	if !report.Passed() {
		return fmt.Errorf("certification failed: %s", report.Summary())
	}
	return nil
}

func listWorkloads(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	suite := parity.NewSuite(parity.NewValidator(cfg.Tolerance), &parity.Dataset{Dir: cfg.DataDir}, cfg.Workers)
	for _, name := range suite.Names() {
		fmt.Println(name)
	}
	return nil
}

func generateData(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := parity.GenerateDataset(cfg.DataDir, flagSeed); err != nil {
		return err
	}
	logger.Info("Dataset generated",
		zap.String("dir", cfg.DataDir),
		zap.Uint64("seed", flagSeed))
	return nil
}
