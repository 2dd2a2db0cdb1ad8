package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/forms"
)

var alertCmd = &cobra.Command{
	Use:   "alert <message>",
	Short: "Show a message with an acknowledgement button",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := resourceOptions(cmd)
		if title, _ := cmd.Flags().GetString("title"); title != "" {
			opts = append(opts, forms.WithTitle(title))
		}
		if buttons, _ := cmd.Flags().GetStringSlice("buttons"); len(buttons) > 0 {
			opts = append(opts, forms.WithButtons(buttons...))
		}
		if silent, _ := cmd.Flags().GetBool("silent"); silent {
			opts = append(opts, forms.WithAlertPolicy(forms.AlertPolicy{Silent: true}))
		}

		button := forms.Alert(cmd.Context(), args[0], opts...)
		if button == nil {
			return nil
		}
		fmt.Println(*button)
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question; exit status 1 on no",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !forms.Confirm(cmd.Context(), args[0], resourceOptions(cmd)...) {
			os.Exit(1)
		}
		return nil
	},
}

var inputCmd = &cobra.Command{
	Use:   "input <prompt>",
	Short: "Prompt for a line of text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := resourceOptions(cmd)
		if def, _ := cmd.Flags().GetString("default"); def != "" {
			opts = append(opts, forms.WithDefault(def))
		}

		text := forms.Input(cmd.Context(), args[0], opts...)
		if text == nil {
			os.Exit(1)
		}
		fmt.Println(*text)
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <message> [item...]",
	Short: "Pick from a list; items from args or stdin lines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := args[1:]
		if len(items) == 0 {
			items = stdinLines()
		}
		opts := resourceOptions(cmd)
		if fuzzy, _ := cmd.Flags().GetBool("fuzzy"); fuzzy {
			opts = append(opts, forms.WithFilter(backend.FilterFuzzy))
		}

		if multi, _ := cmd.Flags().GetBool("multi"); multi {
			opts = append(opts, forms.WithAllButton())
			for _, value := range forms.SelectMultiFromList(cmd.Context(), args[0], items, opts...) {
				fmt.Println(value)
			}
			return nil
		}

		value := forms.SelectFromList(cmd.Context(), args[0], items, opts...)
		if value == nil {
			os.Exit(1)
		}
		fmt.Println(*value)
		return nil
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose <message> <option>...",
	Short: "Pick via large buttons, one per option",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := resourceOptions(cmd)
		if multi, _ := cmd.Flags().GetBool("multi"); multi {
			opts = append(opts, forms.WithAllButton())
			for _, value := range forms.BigButtonsMulti(cmd.Context(), args[0], args[1:], opts...) {
				fmt.Println(value)
			}
			return nil
		}

		value := forms.BigButtons(cmd.Context(), args[0], args[1:], opts...)
		if value == nil {
			os.Exit(1)
		}
		fmt.Println(*value)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <name=type:value>...",
	Short: "Bulk-edit parameters, e.g. 'Height=float:2.4' 'Structural=bool:true'",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := make([]forms.Parameter, 0, len(args))
		for _, arg := range args {
			p, err := parseParamArg(arg)
			if err != nil {
				return err
			}
			params = append(params, p)
		}

		changes, ok := forms.BulkEdit(cmd.Context(), "", params, resourceOptions(cmd)...)
		if !ok {
			os.Exit(1)
		}
		for name, value := range changes {
			fmt.Printf("%s=%v\n", name, value)
		}
		return nil
	},
}

func parseParamArg(arg string) (forms.Parameter, error) {
	name, rest, ok := strings.Cut(arg, "=")
	if !ok {
		return forms.Parameter{}, fmt.Errorf("invalid parameter %q, want name=type:value", arg)
	}
	paramType, raw, ok := strings.Cut(rest, ":")
	if !ok {
		paramType, raw = "string", rest
	}

	p := forms.Parameter{Name: name, Type: paramType}
	switch p.Type {
	case forms.TypeBool:
		p.Value = strings.EqualFold(raw, "true") || raw == "1" || strings.EqualFold(raw, "yes")
	case forms.TypeFloat:
		var f float64
		if _, err := fmt.Sscanf(raw, "%g", &f); err != nil {
			return forms.Parameter{}, fmt.Errorf("invalid float value %q for %s", raw, name)
		}
		p.Value = f
	default:
		p.Value = raw
	}
	return p, nil
}

func stdinLines() []string {
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func init() {
	alertCmd.Flags().String("title", "", "dialog title")
	alertCmd.Flags().StringSlice("buttons", nil, "button labels, first is primary")
	alertCmd.Flags().Bool("silent", false, "suppress the dialog entirely")
	inputCmd.Flags().String("default", "", "prefilled value")
	selectCmd.Flags().Bool("multi", false, "allow multiple selections")
	selectCmd.Flags().Bool("fuzzy", false, "fuzzy filter instead of substring")
	chooseCmd.Flags().Bool("multi", false, "allow multiple selections")
}
