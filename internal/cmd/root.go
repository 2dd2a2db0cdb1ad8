// Package cmd implements the ada-ui demo CLI: one subcommand per dialog
// kind, driving the same public surface an embedding application would.
package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/ambler289/ada-ui/forms"
	"github.com/ambler289/ada-ui/internal/env"
	"github.com/ambler289/ada-ui/internal/fsext"
	"github.com/ambler289/ada-ui/internal/log"
	"github.com/ambler289/ada-ui/internal/version"
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("resources", "r", "", "templates and themes directory")
	rootCmd.Flags().BoolP("help", "h", false, "help")

	rootCmd.AddCommand(
		alertCmd,
		confirmCmd,
		inputCmd,
		selectCmd,
		chooseCmd,
		editCmd,
		backendsCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "ada-ui",
	Short: "Themed terminal dialogs",
	Long:  "Demo driver for the ada-ui dialog library: themed modal prompts with graceful backend degradation.",
	Example: `
# Show an alert
ada-ui alert "Model published"

# Ask a yes/no question; exit status reflects the answer
ada-ui confirm "Delete 12 views?"

# Pick from a list piped on stdin
ls | ada-ui select "Pick a file"

# Force the console backend
ADA_UI_BACKEND=console ada-ui confirm "Still works?"
  `,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		dir, _ := cmd.Flags().GetString("resources")
		if dir == "" {
			dir = fsext.ResourceDir(env.New())
		}
		if err := os.MkdirAll(dir, 0o755); err == nil {
			log.Setup(filepath.Join(dir, "ada-ui.log"), debug)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// resourceOptions translates the persistent flags into dialog options.
func resourceOptions(cmd *cobra.Command) []forms.Option {
	dir, _ := cmd.Flags().GetString("resources")
	if dir == "" {
		return nil
	}
	return []forms.Option{forms.WithResourceDir(dir)}
}

// Execute runs the CLI.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
