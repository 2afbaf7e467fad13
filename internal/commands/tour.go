package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
	"github.com/sibyl-dev/sibyl/picker"
	"github.com/sibyl-dev/sibyl/spinner"
	"github.com/sibyl-dev/sibyl/style"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Walk through every prompt type",
	RunE:  runTour,
}

func init() {
	RootCmd.AddCommand(tourCmd)
}

func runTour(cmd *cobra.Command, args []string) error {
	p := newPrompter()

	green := style.New(style.Foreground, style.Green)
	cyan := style.New(style.Bright, style.Cyan)

	ok, err := p.YesNo("Ready to start? (Y/n) ", &green, true)
	if err != nil {
		return err
	}
	if !ok {
		output.Info("Maybe next time.")
		return nil
	}

	fruit, err := p.Selection("Choose something", "(a)pples, (b)ananas, (D)oughnuts", &cyan, "D")
	if err != nil {
		return err
	}
	output.Success(fmt.Sprintf("Noted: %s", fruit))

	// Pretend to do something with the answer so the spinner has a
	// moment on screen.
	_ = spinner.While("Consulting the oracle", func() error {
		time.Sleep(800 * time.Millisecond)
		return nil
	})

	res, err := picker.Pick("And from a menu this time", []string{"apples", "bananas", "doughnuts"})
	if err != nil {
		return err
	}
	if res.Cancelled {
		output.Info("Menu cancelled.")
		return nil
	}
	output.Success(fmt.Sprintf("Picked: %s", res.Value))
	output.Hint("every prompt here is available as its own subcommand")

	return nil
}
