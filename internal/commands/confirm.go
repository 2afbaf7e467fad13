package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
)

var confirmDefaultYes bool

var confirmCmd = &cobra.Command{
	Use:   "confirm [question]",
	Short: "Ask a yes/no question",
	Long: `Asks a yes/no question and prints the answer. The question is asked
again until the reply is y, n, or empty; an empty reply uses the default.

Example:
  sibyl confirm "Deploy to production? (y/N) "
  sibyl confirm --default-yes --color green "Approved? (Y/n) >>> "`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfirm,
}

func init() {
	confirmCmd.Flags().BoolVar(&confirmDefaultYes, "default-yes", false, "Answer yes when the reply is empty")

	RootCmd.AddCommand(confirmCmd)
}

func runConfirm(cmd *cobra.Command, args []string) error {
	question := "Continue? (y/N) "
	if len(args) > 0 {
		question = args[0]
	}

	st, err := promptStyle()
	if err != nil {
		return err
	}

	ok, err := newPrompter().YesNo(question, st, confirmDefaultYes)
	if err != nil {
		output.Error(fmt.Sprintf("confirmation failed: %v", err))
		return err
	}

	if ok {
		fmt.Println("yes")
	} else {
		fmt.Println("no")
	}
	return nil
}
