package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/logger"
	"github.com/hookline/hookline/internal/registry"
	"github.com/hookline/hookline/internal/settings"
)

var (
	updateSettingsFile string
	updateDryRun       bool
)

var updateCmd = &cobra.Command{
	Use:   "update-config",
	Short: "Reconcile hook entries into the host settings file",
	Long: `Regenerate the managed hook entries in the host settings file from the
current set of registered hooks.

Entries invoking "hookline execute <name>" are owned by hookline and are
replaced wholesale; everything else in the file, hand-authored hook entries
included, is preserved verbatim. The write is atomic. Running this command
twice in a row produces a byte-identical file.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateSettingsFile, "settings", "", "Override host settings file path")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Print the reconciled document instead of writing it")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	reg, _, err := buildRegistry(registry.DefaultScanOptions())
	if err != nil {
		return fmt.Errorf("cannot reconcile with unresolved conflicts: %w", err)
	}

	path := settingsPath(updateSettingsFile, cfg)
	doc, err := settings.Load(path)
	if err != nil {
		return err
	}

	rec := &settings.Reconciler{
		Registry:       reg,
		Overrides:      cfg.Overrides(),
		DefaultTimeout: cfg.Settings.DefaultTimeout,
	}
	next := rec.Apply(doc)

	if updateDryRun {
		data, err := settings.Marshal(next)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := settings.Save(path, next); err != nil {
		return err
	}

	logger.Info().
		Str("path", path).
		Int("hooks", reg.Len()).
		Msg("Settings reconciled")
	fmt.Printf("Updated %s (%d registered hook(s))\n", path, reg.Len())
	return nil
}
