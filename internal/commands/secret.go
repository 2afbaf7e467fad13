package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
)

var secretCmd = &cobra.Command{
	Use:   "secret [question]",
	Short: "Ask for a value without echoing it",
	Long: `Reads a value with terminal echo disabled, for passwords and tokens.
The value itself is printed to stdout so it can be captured by a script;
nothing is shown while typing.

Example:
  export TOKEN=$(sibyl secret "API token: ")`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSecret,
}

func init() {
	RootCmd.AddCommand(secretCmd)
}

func runSecret(cmd *cobra.Command, args []string) error {
	question := "Secret: "
	if len(args) > 0 {
		question = args[0]
	}

	st, err := promptStyle()
	if err != nil {
		return err
	}

	value, err := newPrompter().Secret(question, st)
	if err != nil {
		output.Error(fmt.Sprintf("reading secret failed: %v", err))
		return err
	}

	output.Verbose(fmt.Sprintf("received %d characters", len(value)))
	fmt.Println(value)
	return nil
}
