// slack-vacation marks your Slack display name while you are on vacation.
//
// Usage:
//
//	slack-vacation -t TOKEN [-d 04/01]   append "(04/01休)", default date is tomorrow
//	slack-vacation -t TOKEN -b           remove the marker again
//	slack-vacation -stdio                serve both flows as MCP tools on stdio
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/slack-vacation/internal/auth"
	"github.com/hal9000y/slack-vacation/internal/marker"
	"github.com/hal9000y/slack-vacation/internal/redact"
	"github.com/hal9000y/slack-vacation/internal/slack"
	"github.com/hal9000y/slack-vacation/internal/tool"
	"github.com/hal9000y/slack-vacation/internal/vacation"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

type options struct {
	token       string
	back        bool
	date        string
	timeout     time.Duration
	envFile     string
	getURL      string
	setURL      string
	enableStdio bool
	logFile     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, time.Now)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitConfig
	}

	persistLogs, err := setupLogger(opts.enableStdio, opts.logFile, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config error: %s\n", err)
		return exitConfig
	}
	defer persistLogs()

	svc, err := newService(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config error: %s\n", redact.Secrets(err.Error()))
		return exitConfig
	}

	if opts.enableStdio {
		if err := serveStdio(ctx, tool.NewServer(svc, now)); err != nil {
			_, _ = fmt.Fprintf(stderr, "mcp server failed: %s\n", redact.Secrets(err.Error()))
			return exitFailed
		}
		return exitOK
	}

	var next string
	if opts.back {
		log.Println("I'm back from vacation")
		next, err = svc.Return(ctx)
	} else {
		date := opts.date
		if date == "" {
			date = marker.Tomorrow(now())
		}
		log.Println("I'm going on vacation:", date)
		next, err = svc.Enter(ctx, date)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "update failed: %s\n", redact.Secrets(err.Error()))
		return exitFailed
	}

	_, _ = fmt.Fprintln(stdout, next)
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("slack-vacation", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.token, "token", "", "Slack app token (env: SLACK_TOKEN)")
	fs.StringVar(&opts.token, "t", "", "Shorthand for -token")
	fs.BoolVar(&opts.back, "back", false, "You're back from vacation: remove the marker")
	fs.BoolVar(&opts.back, "b", false, "Shorthand for -back")
	fs.StringVar(&opts.date, "date", "", "Vacation date shown in the marker, MM/DD (default tomorrow)")
	fs.StringVar(&opts.date, "d", "", "Shorthand for -date")
	fs.DurationVar(&opts.timeout, "timeout", auth.DefaultTimeout, "Timeout for each Slack API call")
	fs.StringVar(&opts.envFile, "env-file", "", "Path to env file")
	fs.StringVar(&opts.getURL, "get-url", slack.DefaultGetURL, "users.profile.get endpoint")
	fs.StringVar(&opts.setURL, "set-url", slack.DefaultSetURL, "users.profile.set endpoint")
	fs.BoolVar(&opts.enableStdio, "stdio", false, "Serve MCP tools on stdio instead of running one flow (disables stdout logging)")
	fs.StringVar(&opts.logFile, "log-file", "", "Path to log file (otherwise logs to stdout)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments")
	}

	return opts, nil
}

func newService(opts options) (*vacation.Service, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return nil, fmt.Errorf("godotenv.Load failed: %w", err)
		}
	}

	raw := opts.token
	if raw == "" {
		raw = os.Getenv("SLACK_TOKEN")
	}
	tok, err := auth.NewToken(raw)
	if err != nil {
		return nil, fmt.Errorf("-token or SLACK_TOKEN must be set: %w", err)
	}

	clt, err := slack.NewClient(slack.Config{
		GetURL: opts.getURL,
		SetURL: opts.setURL,
	}, tok.Client(opts.timeout))
	if err != nil {
		return nil, fmt.Errorf("slack.NewClient failed: %w", err)
	}

	return vacation.NewService(clt, clt), nil
}

func serveStdio(ctx context.Context, srv *mcp.Server) error {
	log.Println("Starting stdio transport")

	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("srv.Run failed: %w", err)
	}

	log.Println("Stdio transport stopped")
	return nil
}

func setupLogger(enableStdio bool, logFile string, stdout io.Writer) (func(), error) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)

		return func() {
			if err := f.Close(); err != nil {
				log.Println(fmt.Errorf("f.Close failed: %w", err))
			}
		}, nil
	}

	if enableStdio {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(stdout)
	}

	return func() {}, nil
}
