package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	apexlog "github.com/apex/log"
	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/backend/native"
	"github.com/gspinelli/gskit/log"
	"github.com/gspinelli/gskit/ui/hud"
	"github.com/gspinelli/gskit/ui/hud/term"
	"github.com/gspinelli/gskit/ui/mainthread"
	"github.com/spf13/cobra"
)

const environmentVariableVerbose = "GSKIT_VERBOSE"

type (
	// app holds the options shared by the commands.
	app struct {
		log       log.Logger
		lookupEnv func(string) (string, bool)
		verbose   bool
		timeout   time.Duration
		quiet     bool
	}

	// fetchFlags are the options of the fetch command.
	fetchFlags struct {
		method  string
		headers []string
		data    []string
		status  string
	}
)

// newRootCommand creates the gskit command and its subcommands.
func (a *app) newRootCommand() *cobra.Command {
	_, verbose := a.lookupEnv(environmentVariableVerbose)
	cmd := &cobra.Command{
		Use:          "gskit",
		Short:        "Sends json requests to http servers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				apexlog.SetLevel(apexlog.DebugLevel)
			}
		},
	}
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", verbose, fmt.Sprintf("Enable verbose log output (also enabled by %s).", environmentVariableVerbose))
	flags.DurationVar(&a.timeout, "timeout", 30*time.Second, "The maximum time a request can take.")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Do not show the spinner while the request is in flight.")
	cmd.AddCommand(a.newFetchCommand(), a.newChannelsCommand())
	return cmd
}

// newFetchCommand creates the command that sends a request and prints the json response.
func (a *app) newFetchCommand() *cobra.Command {
	var f fetchFlags
	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Send a request and print the json response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(args[0])
			if err != nil {
				return err
			}
			t := backend.NewTyped[backend.Value](req)
			v, err := execute(cmd.Context(), a, cmd, t, f.status)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.method, "request", "X", string(backend.MethodGet), "The http method: GET, POST, PUT, DELETE, or PATCH.")
	flags.StringArrayVarP(&f.headers, "header", "H", nil, "A header to send, as 'Key: Value'.  Can be repeated.")
	flags.StringArrayVarP(&f.data, "data", "d", nil, "A json body parameter, as key=value.  Values that are not json are sent as strings.  Can be repeated.")
	flags.StringVar(&f.status, "status", "Loading", "The text shown next to the spinner.")
	return cmd
}

// newChannelsCommand creates the command that prints the channel names of a demo server.
func (a *app) newChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels URL",
		Short: "Print the channel names of the server at the url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := backend.NewRequest(args[0])
			t := backend.NewTyped[[]string](req)
			names, err := execute(cmd.Context(), a, cmd, t, "Loading channels")
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return cmd
}

// request creates the request described by the flags.
func (f fetchFlags) request(url string) (backend.Request, error) {
	headers, err := parseHeaders(f.headers)
	if err != nil {
		return backend.Request{}, err
	}
	params, err := parseParams(f.data)
	if err != nil {
		return backend.Request{}, err
	}
	cfg := backend.RequestConfig{
		Path:    url,
		Method:  parseMethod(f.method),
		Params:  params,
		Headers: headers,
	}
	return cfg.NewRequest(), nil
}

// execute runs the request on a main thread loop, showing the spinner until the callback is run.
func execute[R any](ctx context.Context, a *app, cmd *cobra.Command, t backend.Typed[R], status string) (R, error) {
	var result R
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	nativeCfg := native.Config{
		Timeout: a.timeout,
	}
	d, err := nativeCfg.NewDispatcher(a.log)
	if err != nil {
		return result, err
	}
	loopCfg := mainthread.Config{
		Log: a.log,
	}
	loop, err := loopCfg.NewLoop()
	if err != nil {
		return result, err
	}
	c, err := a.newHUD(cmd)
	if err != nil {
		return result, err
	}
	loopCtx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	var resultErr error
	c.Show(status)
	defer c.DismissNow()
	t.Execute(ctx, d, loop,
		func(r R) {
			result = r
			cancelFunc()
		},
		func(err error) {
			resultErr = err
			cancelFunc()
		},
	)
	if err := loop.Run(loopCtx); err != nil { // BLOCKING
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("interrupted: %w", err)
	}
	return result, resultErr
}

// newHUD creates the spinner overlay, which draws nothing when the app is quiet.
func (a *app) newHUD(cmd *cobra.Command) (*hud.Controller, error) {
	w := cmd.ErrOrStderr()
	if a.quiet {
		w = io.Discard
	}
	termCfg := term.Config{}
	cfg := hud.Config{
		Renderer: termCfg.NewRenderer(w),
		Log:      a.log,
	}
	return cfg.NewController()
}
