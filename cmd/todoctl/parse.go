package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/quickadd"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Show how quick-add text would be split into a name and due date",
	Long: `Parse runs the quick-add date parser locally. The arguments are joined
with spaces. Relative expressions resolve against --base, or today.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseBase string
	parseLang string
)

func init() {
	parseCmd.Flags().StringVar(&parseBase, "base", "", "base date for relative expressions (YYYY-MM-DD)")
	parseCmd.Flags().StringVar(&parseLang, "lang", "", "language preference, as an Accept-Language value (default: $LANG)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var base time.Time
	if parseBase != "" {
		d, err := todo.ParseDate(parseBase)
		if err != nil {
			return fmt.Errorf("--base: %w", err)
		}
		base = d
	}

	catalog, err := quickadd.LoadCatalog(defaultLocale, nil)
	if err != nil {
		return fmt.Errorf("loading keyword sets: %w", err)
	}

	parser := catalog.ForAcceptLanguage(preferredLanguage(parseLang))
	res := parser.Parse(strings.Join(args, " "), base)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "locale:  %s\n", parser.Locale())
	fmt.Fprintf(out, "name:    %s\n", res.Name)
	if res.DueDate != nil {
		fmt.Fprintf(out, "due:     %s\n", res.DueDateString())
		fmt.Fprintf(out, "matched: %s\n", res.Matched)
	} else {
		fmt.Fprintln(out, "due:     (none)")
	}
	return nil
}
