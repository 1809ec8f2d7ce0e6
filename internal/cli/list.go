package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered hooks by event",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	loadConfig()

	reg, _, err := buildRegistry(registry.DefaultScanOptions())
	if err != nil {
		return err
	}

	for _, t := range event.AllTypes() {
		impls := reg.ListByKind(t)
		if len(impls) == 0 {
			continue
		}
		fmt.Printf("%s:\n", t)
		for _, impl := range impls {
			fmt.Printf("  %-20s timeout=%ds", impl.Name, impl.Timeout)
			if event.IsToolScoped(t) {
				fmt.Printf(" matcher=%q", impl.Matcher)
			}
			fmt.Println()
		}
	}
	return nil
}
