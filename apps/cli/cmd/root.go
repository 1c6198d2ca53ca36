package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// rootOptions holds the global flags shared by get and post.
type rootOptions struct {
	color        output.ColorMode
	configPath   string
	headers      []string
	auth         string
	authType     string
	timeout      time.Duration
	insecure     bool
	proxy        string
	follow       bool
	maxRedirects int
	compressed   bool
	filter       string
	logLevel     string
	logFile      string
	envFile      string

	// cleanup releases the log file, set once logging is configured.
	cleanup func() error
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	o := &rootOptions{color: output.ColorAuto}

	rootCmd := &cobra.Command{
		Use:   "httpie",
		Short: "A friendly command-line HTTP client.",
		Long: `httpie sends a single GET or POST request and prints the status line,
the response headers and the body. JSON responses are pretty-printed.

Examples:
  httpie get https://httpbin.org/get
  httpie post https://httpbin.org/post name=alice role=admin
  httpie --color=never get https://example.com/
  httpie get https://api.example.com/users --filter '.[0].name'`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("a subcommand is required (get or post)")
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.PersistentFlags()

	colorFlag := flags.VarPF(&o.color, "color", "", "When to use colors: always, auto, never (env: HTTPIE_COLOR)")
	colorFlag.NoOptDefVal = string(output.ColorAlways)
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(output.ColorModes))
		for i, m := range output.ColorModes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	flags.StringVar(&o.configPath, "config", getEnvString("HTTPIE_CONFIG", ""), "Path to config file (env: HTTPIE_CONFIG)")
	flags.StringArrayVarP(&o.headers, "header", "H", nil, "Extra request header as Name:Value (repeatable)")
	flags.StringVarP(&o.auth, "auth", "a", getEnvString("HTTPIE_AUTH", ""), "Credentials as user:password (env: HTTPIE_AUTH)")
	flags.StringVar(&o.authType, "auth-type", getEnvString("HTTPIE_AUTH_TYPE", "basic"), "Authentication scheme: basic, digest (env: HTTPIE_AUTH_TYPE)")
	flags.DurationVar(&o.timeout, "timeout", getEnvDuration("HTTPIE_TIMEOUT", 0), "Overall request timeout, 0 for none (env: HTTPIE_TIMEOUT)")
	flags.BoolVarP(&o.insecure, "insecure", "k", getEnvBool("HTTPIE_INSECURE", false), "Disable SSL certificate validation (env: HTTPIE_INSECURE)")
	flags.StringVar(&o.proxy, "proxy", getEnvString("HTTPIE_PROXY", ""), "Proxy URL for the request (env: HTTPIE_PROXY)")
	flags.BoolVar(&o.follow, "follow", getEnvBool("HTTPIE_FOLLOW", true), "Follow redirects (env: HTTPIE_FOLLOW)")
	flags.IntVar(&o.maxRedirects, "max-redirects", getEnvInt("HTTPIE_MAX_REDIRECTS", 10), "Maximum redirects to follow (env: HTTPIE_MAX_REDIRECTS)")
	flags.BoolVar(&o.compressed, "compressed", getEnvBool("HTTPIE_COMPRESSED", false), "Request gzip, zstd or br and decode the body (env: HTTPIE_COMPRESSED)")
	flags.StringVar(&o.filter, "filter", "", "jq expression applied to JSON response bodies")
	flags.StringVar(&o.envFile, "env-file", getEnvString("HTTPIE_ENV_FILE", ""), "Read {{$NAME}} values from a .env file (env: HTTPIE_ENV_FILE)")
	flags.StringVar(&o.logLevel, "log-level", getEnvString("HTTPIE_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error (env: HTTPIE_LOG_LEVEL)")
	flags.StringVar(&o.logFile, "log-file", getEnvString("HTTPIE_LOG_FILE", ""), "Write logs to a rotating file instead of stderr (env: HTTPIE_LOG_FILE)")

	rootCmd.AddCommand(newGetCmd(o))
	rootCmd.AddCommand(newPostCmd(o))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd, o
}

// Execute runs the CLI with the process arguments and exits.
func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes one invocation and returns its exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd, o := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)

	if o.cleanup != nil {
		_ = o.cleanup()
	}

	if err == nil {
		return ExitSuccess
	}

	code := exitCode(err)
	output.NewPrinter(o.color, output.WithWriter(stderr)).PrintError(err)
	if code == ExitUsageError {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}
