package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/dispatch"
	"github.com/hookline/hookline/internal/registry"
)

var executeCmd = &cobra.Command{
	Use:   "execute <name>",
	Short: "Run one hook against the payload on stdin",
	Long: `Run one registered hook.

Reads the hook payload as JSON from stdin, dispatches it to the named hook,
and writes the encoded decision as a single JSON document to stdout. On any
failure nothing is written to stdout and the exit code is non-zero.

This is the command the generated settings entries invoke.`,
	Args: cobra.ExactArgs(1),
	RunE: runExecute,
}

func init() {
	rootCmd.AddCommand(executeCmd)
}

func runExecute(cmd *cobra.Command, args []string) error {
	loadConfig()

	reg, _, err := buildRegistry(registry.DefaultScanOptions())
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("no input received from stdin")
	}

	out, err := dispatch.New(reg).Run(args[0], raw)
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
