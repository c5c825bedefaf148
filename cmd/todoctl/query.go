package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the backing API query a search would send",
	Long: `Query normalizes a search the way the gateway does and prints the
resulting backing API query string, or "(no query)" when nothing filters.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

var (
	querySearch searchOptions
	queryLang   string
)

// searchOptions are the filters shared by query and list.
type searchOptions struct {
	keyword string
	status  string
	dueDate string
}

func (o *searchOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.keyword, "keyword", "", "match todos whose name contains this text")
	f.StringVar(&o.status, "status", "", "all, not_started, in_progress or completed")
	f.StringVar(&o.dueDate, "due", "", "all, today or overdue")
}

// values renders the options as gateway search parameters.
func (o *searchOptions) values() url.Values {
	v := url.Values{}
	if o.keyword != "" {
		v.Set(todo.ParamKeyword, o.keyword)
	}
	if o.status != "" {
		v.Set(todo.ParamStatus, o.status)
	}
	if o.dueDate != "" {
		v.Set(todo.ParamDueDate, o.dueDate)
	}
	return v
}

func init() {
	querySearch.register(queryCmd)
	queryCmd.Flags().StringVar(&queryLang, "lang", "", "message language (default: $LANG)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, _ []string) error {
	state, errs := todo.ParseSearchState(querySearch.values())
	out := cmd.OutOrStdout()
	if len(errs) > 0 {
		if err := printFieldErrors(cmd.Context(), out, queryLang, errs); err != nil {
			return err
		}
		return exitError{code: 1}
	}

	q, ok := todo.NormalizeSearchQuery(state)
	if !ok {
		fmt.Fprintln(out, "(no query)")
		return nil
	}
	fmt.Fprintln(out, q.Values().Encode())
	return nil
}
