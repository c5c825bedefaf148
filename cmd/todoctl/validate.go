package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/i18n"
)

// defaultLocale is the fallback for keyword sets and messages.
const defaultLocale = "en"

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check todo fields against the gateway's field rules",
	Long: `Validate checks the given fields without contacting a gateway. It prints
"ok" when every rule passes. Otherwise it prints one line per failure and
exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateFields todo.RawFields
	validateOnly   string
	validateLang   string
)

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFields.Name, "name", "", "todo name")
	f.StringVar(&validateFields.Detail, "detail", "", "todo detail")
	f.StringVar(&validateFields.DueDate, "due", "", "due date (YYYY-MM-DD)")
	f.StringVar(&validateFields.RecurrenceType, "recurrence", "", "recurrence type (none, daily, weekly, monthly)")
	f.StringVar(&validateOnly, "field", "", "report only this field (name, detail, dueDate, recurrenceType)")
	f.StringVar(&validateLang, "lang", "", "message language (default: $LANG)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var errs []domain.FieldError
	if validateOnly != "" {
		errs = validateFields.ValidateField(validateOnly)
	} else {
		errs = validateFields.Validate()
	}

	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintln(out, "ok")
		return nil
	}
	if err := printFieldErrors(cmd.Context(), out, validateLang, errs); err != nil {
		return err
	}
	return exitError{code: 1}
}

// printFieldErrors writes one localized line per error, for example
// "name [max_length] Task name must be at most 100 characters".
func printFieldErrors(ctx context.Context, w io.Writer, lang string, errs []domain.FieldError) error {
	tr, err := i18n.New(defaultLocale)
	if err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}
	ctx = i18n.WithLanguages(ctx, preferredLanguage(lang))

	for _, fe := range errs {
		fmt.Fprintf(w, "%s [%s] %s\n", fe.Field, fe.Reason, tr.FieldError(ctx, fe))
	}
	return nil
}

// preferredLanguage returns flag, or a tag derived from $LANG such as
// "ja-JP" for "ja_JP.UTF-8". The result may be empty.
func preferredLanguage(flag string) string {
	if flag != "" {
		return flag
	}
	lang, _, _ := strings.Cut(os.Getenv("LANG"), ".")
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
