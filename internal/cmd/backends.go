package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/internal/env"
	"github.com/ambler289/ada-ui/internal/ui/dialog"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Probe the backend tiers and show which one would serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := env.New()
		adapters := []backend.Adapter{
			dialog.NewTUI(false, e),
			dialog.NewTUI(true, e),
			backend.DefaultConsole(),
			backend.Noop{},
		}

		for _, a := range adapters {
			status := "ok"
			if err := a.Probe(); err != nil {
				status = err.Error()
			}
			fmt.Printf("%-8s %s\n", a.ID(), status)
		}

		selected := backend.NewSelector(e, adapters...).Select()
		fmt.Printf("\nselected: %s\n", selected.ID())
		return nil
	},
}
