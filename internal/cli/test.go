package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/dispatch"
	"github.com/hookline/hookline/internal/registry"
)

var testInputFile string

var testCmd = &cobra.Command{
	Use:   "test <name>",
	Short: "Run a hook against a sample payload for local verification",
	Long: `Run a hook the way execute does, but with the test-oriented scan that
also registers fixture hooks. The host settings file is never touched.

The payload comes from --input, or stdin when --input is "-" or omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVarP(&testInputFile, "input", "i", "", "Read the payload from this file instead of stdin")
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	loadConfig()

	reg, _, err := buildRegistry(registry.FixtureScanOptions())
	if err != nil {
		return err
	}

	var raw []byte
	if testInputFile == "" || testInputFile == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(testInputFile)
	}
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("empty payload")
	}

	out, err := dispatch.New(reg).Run(args[0], raw)
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
