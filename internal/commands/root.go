package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sibyl-dev/sibyl/output"
	"github.com/sibyl-dev/sibyl/prompt"
	"github.com/sibyl-dev/sibyl/style"
)

var (
	verbose     bool
	colorName   string
	variantName string
)

// RootCmd is the root command for the sibyl demo CLI.
var RootCmd = &cobra.Command{
	Use:   "sibyl",
	Short: "Sibyl - styled line prompts for the terminal",
	Long: `Sibyl asks questions on the terminal: yes/no confirmations, free-form
selections with defaults, hidden secrets, and arrow-key menus.

This CLI is a thin demonstration layer over the library packages.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVar(&colorName, "color", "", "Prompt color (black, red, green, yellow, blue, magenta, cyan, white)")
	RootCmd.PersistentFlags().StringVar(&variantName, "variant", "foreground", "Color variant (foreground, background, bright, bright-background)")
}

// promptStyle builds the optional prompt style from the global flags.
// No --color flag means no styling at all.
func promptStyle() (*style.Style, error) {
	if colorName == "" {
		return nil, nil
	}
	c, err := style.ParseColor(colorName)
	if err != nil {
		return nil, err
	}
	v, err := style.ParseVariant(variantName)
	if err != nil {
		return nil, err
	}
	st := style.New(v, c)
	return &st, nil
}

// newPrompter builds the shared prompter, logging prompt events to
// stderr when --verbose is set.
func newPrompter() *prompt.Prompter {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	return prompt.New(&prompt.Options{Logger: logger})
}
