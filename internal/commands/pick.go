package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
	"github.com/sibyl-dev/sibyl/picker"
)

var pickPrompt string

var pickCmd = &cobra.Command{
	Use:   "pick option...",
	Short: "Pick one option from an arrow-key menu",
	Long: `Shows an interactive, filterable menu of the given options and prints
the chosen one. Esc cancels with a non-zero exit code.

Example:
  sibyl pick --prompt "Choose a fruit" apples bananas carrots`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickPrompt, "prompt", "Pick one", "Menu title")

	RootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	res, err := picker.Pick(pickPrompt, args)
	if err != nil {
		output.Error(fmt.Sprintf("menu failed: %v", err))
		return err
	}
	if res.Cancelled {
		return fmt.Errorf("cancelled")
	}

	output.Verbose(fmt.Sprintf("picked option %d", res.Index))
	fmt.Println(res.Value)
	return nil
}
