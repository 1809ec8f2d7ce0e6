package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/logger"
	"github.com/hookline/hookline/internal/registry"
)

var scanIncludeFixtures bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover and classify hook implementations",
	Long: `Discover hook implementations in the bundled hook source.

Each definition is classified against the capability interfaces; definitions
satisfying exactly one capability are registered. Name conflicts are
collected across the whole scan and reported together.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanIncludeFixtures, "include-fixtures", false, "Include test fixture units in the scan")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	loadConfig()

	opts := registry.DefaultScanOptions()
	if scanIncludeFixtures {
		opts = registry.FixtureScanOptions()
	}

	reg, report, err := buildRegistry(opts)

	fmt.Printf("Registered %d hook(s):\n", reg.Len())
	for _, impl := range report.Registered {
		line := fmt.Sprintf("  %-20s %-18s timeout=%ds", impl.Name, impl.Kind, impl.Timeout)
		if impl.Matcher != registry.DefaultMatcher {
			line += fmt.Sprintf(" matcher=%q", impl.Matcher)
		}
		fmt.Println(line)

		if merr := registry.ValidateMatcher(impl.Matcher); merr != nil {
			logger.Warn().
				Str("hook", impl.Name).
				Err(merr).
				Msg("Matcher does not compile")
		}
	}

	if len(report.Skipped) > 0 {
		fmt.Printf("\nSkipped %d definition(s):\n", len(report.Skipped))
		for _, s := range report.Skipped {
			fmt.Printf("  %s (%s): satisfies %d capabilities\n", s.Type, s.Path, len(s.Kinds))
		}
	}

	if err != nil {
		return fmt.Errorf("scan found name conflicts:\n%w", err)
	}
	return nil
}
