package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
)

var (
	chooseChoices string
	chooseDefault string
)

var chooseCmd = &cobra.Command{
	Use:   "choose [question]",
	Short: "Ask for a choice from a displayed list",
	Long: `Shows a question with a bracketed list of choices and reads one reply.
An empty reply returns the default; any other reply is returned as typed.
The reply is not checked against the list - the list is a display aid.

Example:
  sibyl choose "Choose something" --choices "(a)pples, (b)ananas, (D)oughnuts" --default D`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChoose,
}

func init() {
	chooseCmd.Flags().StringVar(&chooseChoices, "choices", "", "Choices to display inside the brackets")
	chooseCmd.Flags().StringVar(&chooseDefault, "default", "", "Value returned when the reply is empty")

	RootCmd.AddCommand(chooseCmd)
}

func runChoose(cmd *cobra.Command, args []string) error {
	question := "Choose"
	if len(args) > 0 {
		question = args[0]
	}

	st, err := promptStyle()
	if err != nil {
		return err
	}

	answer, err := newPrompter().Selection(question, chooseChoices, st, chooseDefault)
	if err != nil {
		output.Error(fmt.Sprintf("selection failed: %v", err))
		return err
	}

	output.Verbose(fmt.Sprintf("reply resolved to %q", answer))
	fmt.Println(answer)
	return nil
}
