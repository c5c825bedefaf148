package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
)

const (
	gatewayName    = "todo-gateway"
	defaultServer  = "http://localhost:8080"
	todosPath      = "/api/v1/todos"
	quickAddPath   = todosPath + "/quick-add"
	envServer      = "TODOCTL_SERVER"
	envToken       = "TODOCTL_TOKEN"
	defaultTimeout = 10 * time.Second
)

// gatewayOptions are the connection flags shared by add and list.
type gatewayOptions struct {
	server  string
	token   string
	timeout time.Duration
	lang    string
	verbose bool
}

func (o *gatewayOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.server, "server", "", "gateway base URL (default: $"+envServer+" or "+defaultServer+")")
	f.StringVar(&o.token, "token", "", "bearer token (default: $"+envToken+")")
	f.DurationVar(&o.timeout, "timeout", defaultTimeout, "per-request timeout")
	f.StringVar(&o.lang, "lang", "", "language preference sent as Accept-Language (default: $LANG)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log requests to stderr")
}

// connect builds a requester for the gateway and a context carrying the
// bearer token.
func (o *gatewayOptions) connect(ctx context.Context, cmd *cobra.Command) (*acl.Requester, context.Context) {
	server := o.server
	if server == "" {
		server = os.Getenv(envServer)
	}
	if server == "" {
		server = defaultServer
	}
	token := o.token
	if token == "" {
		token = os.Getenv(envToken)
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", cmd.ErrOrStderr())

	client := httpclient.New(&config.ClientConfig{
		BaseURL: strings.TrimRight(server, "/"),
		Timeout: o.timeout,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}, gatewayName, nil, logger)

	ctx = logging.WithLogger(ctx, logger)
	if token != "" {
		ctx = session.WithToken(ctx, token)
	}
	return acl.NewRequester(client), ctx
}

func (o *gatewayOptions) header() http.Header {
	h := http.Header{}
	if lang := preferredLanguage(o.lang); lang != "" {
		h.Set("Accept-Language", lang)
	}
	return h
}

var addCmd = &cobra.Command{
	Use:   "add TEXT...",
	Short: "Quick-add a todo through the gateway",
	Long: `Add sends free text to the gateway's quick-add endpoint, which takes a
due date out of the text and creates the todo.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addGateway    gatewayOptions
	addBase       string
	addDetail     string
	addRecurrence string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos through the gateway",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listGateway gatewayOptions
	listSearch  searchOptions
)

func init() {
	addGateway.register(addCmd)
	addCmd.Flags().StringVar(&addBase, "base", "", "base date for relative expressions (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDetail, "detail", "", "todo detail")
	addCmd.Flags().StringVar(&addRecurrence, "recurrence", "", "recurrence type")
	rootCmd.AddCommand(addCmd)

	listGateway.register(listCmd)
	listSearch.register(listCmd)
	rootCmd.AddCommand(listCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	req, ctx := addGateway.connect(cmd.Context(), cmd)

	var resp dto.QuickAddResponse
	err := req.Do(ctx, acl.Call{
		Method: http.MethodPost,
		Path:   quickAddPath,
		Header: addGateway.header(),
		Body: dto.QuickAddRequest{
			Text:           strings.Join(args, " "),
			Detail:         addDetail,
			RecurrenceType: addRecurrence,
			BaseDate:       addBase,
		},
		Want: http.StatusCreated,
		Into: &resp,
	})
	if err != nil {
		return reportRemoteError(cmd, addGateway.lang, err)
	}
	if resp.Todo == nil {
		return errors.New("gateway reply has no todo")
	}

	due := "no due date"
	if resp.Todo.DueDate != nil {
		due = "due " + *resp.Todo.DueDate
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created #%d %q (%s)\n", resp.Todo.ID, resp.Todo.Name, due)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	req, ctx := listGateway.connect(cmd.Context(), cmd)

	var resp dto.TodoListResponse
	err := req.Do(ctx, acl.Call{
		Method: http.MethodGet,
		Path:   todosPath,
		Query:  listSearch.values(),
		Header: listGateway.header(),
		Into:   &resp,
	})
	if err != nil {
		return reportRemoteError(cmd, listGateway.lang, err)
	}

	out := cmd.OutOrStdout()
	if resp.Count == 0 {
		fmt.Fprintln(out, "no todos")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDUE\tNAME")
	for _, t := range resp.Todos {
		due := "-"
		if t.DueDate != nil {
			due = *t.DueDate
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.ProgressStatus, due, t.Name)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	fmt.Fprintf(out, "%d todos, %d%% completed\n", resp.Progress.Total, resp.Progress.Percent)
	return nil
}

// reportRemoteError prints field errors one per line and exits 1; any other
// error is returned as is.
func reportRemoteError(cmd *cobra.Command, lang string, err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) == 0 {
		return err
	}
	if perr := printFieldErrors(cmd.Context(), cmd.ErrOrStderr(), lang, verr.Errors); perr != nil {
		return perr
	}
	return exitError{code: 1}
}
