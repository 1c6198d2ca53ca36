package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/abdul-hamid-achik/httpie/packages/core/env"
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/abdul-hamid-achik/httpie/packages/logging"
	"github.com/abdul-hamid-achik/httpie/packages/output"
	"github.com/abdul-hamid-achik/httpie/packages/query"
	"github.com/spf13/cobra"
)

// session is everything needed to send one request, resolved from flags,
// environment and config file in that order of precedence.
type session struct {
	client  *http.Client
	printer *output.Printer
	headers []parser.Header
	auth    *http.Credentials
}

func (o *rootOptions) prepare(cmd *cobra.Command) (*session, error) {
	headers, err := parser.ParseHeaders(o.headers)
	if err != nil {
		return nil, &usageError{err: err}
	}

	var filter *query.Filter
	if o.filter != "" {
		filter, err = query.Compile(o.filter)
		if err != nil {
			return nil, &usageError{err: err}
		}
	}

	overrides, err := o.flagConfig(cmd)
	if err != nil {
		return nil, err
	}

	fileCfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, &configError{err: err}
	}
	cfg := fileCfg.Merge(overrides)

	if cfg.Color != "" {
		mode, err := output.ParseColorMode(cfg.Color)
		if err != nil {
			return nil, &configError{err: fmt.Errorf("config %s: %w", cfg.Path, err)}
		}
		o.color = mode
	}

	if err := o.setupLogging(cmd, cfg); err != nil {
		return nil, &configError{err: fmt.Errorf("setting up logging: %w", err)}
	}
	if cfg.Path != "" {
		slog.Debug("loaded config", "path", cfg.Path)
	}

	resolver, err := o.resolver(cfg)
	if err != nil {
		return nil, err
	}
	for i := range headers {
		headers[i].Value = resolver.Resolve(headers[i].Value)
	}
	cfg.Headers = resolver.ResolveMap(cfg.Headers)

	clientOpts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	var auth *http.Credentials
	if o.auth != "" {
		auth, err = http.ParseCredentials(resolver.Resolve(o.auth), http.AuthType(o.authType))
		if err != nil {
			return nil, &usageError{err: err}
		}
	}

	printerOpts := []output.PrinterOption{output.WithWriter(cmd.OutOrStdout())}
	if filter != nil {
		printerOpts = append(printerOpts, output.WithFilter(filter))
	}

	return &session{
		client:  http.NewClient(clientOpts...),
		printer: output.NewPrinter(o.color, printerOpts...),
		headers: headers,
		auth:    auth,
	}, nil
}

// flagConfig collects the settings given on the command line or through
// HTTPIE_* variables so they can be merged over the config file. A flag
// beats its variable, and a variable that does not parse is a usage error.
func (o *rootOptions) flagConfig(cmd *cobra.Command) (*config.Config, error) {
	changed := cmd.Flags().Changed
	overrides := &config.Config{}

	if changed("color") {
		overrides.Color = string(o.color)
	} else if val := os.Getenv("HTTPIE_COLOR"); val != "" {
		mode, err := output.ParseColorMode(val)
		if err != nil {
			return nil, &usageError{err: fmt.Errorf("HTTPIE_COLOR: %w", err)}
		}
		overrides.Color = string(mode)
	}

	timeout, set, err := lookupEnvDuration("HTTPIE_TIMEOUT")
	if err != nil {
		return nil, &usageError{err: err}
	}
	if changed("timeout") {
		timeout, set = o.timeout, true
	}
	if set {
		if timeout < 0 {
			return nil, usageErrorf("--timeout must not be negative")
		}
		overrides.Timeout = timeout.String()
	}

	follow, set, err := lookupEnvBool("HTTPIE_FOLLOW")
	if err != nil {
		return nil, &usageError{err: err}
	}
	if changed("follow") {
		follow, set = o.follow, true
	}
	if set {
		overrides.FollowRedirects = config.BoolPtr(follow)
	}

	maxRedirects, set, err := lookupEnvInt("HTTPIE_MAX_REDIRECTS")
	if err != nil {
		return nil, &usageError{err: err}
	}
	if changed("max-redirects") {
		maxRedirects, set = o.maxRedirects, true
	}
	if set {
		switch {
		case maxRedirects < 0:
			return nil, usageErrorf("--max-redirects must not be negative")
		case maxRedirects == 0:
			overrides.FollowRedirects = config.BoolPtr(false)
		default:
			overrides.MaxRedirects = maxRedirects
		}
	}

	insecure, set, err := lookupEnvBool("HTTPIE_INSECURE")
	if err != nil {
		return nil, &usageError{err: err}
	}
	if changed("insecure") {
		insecure, set = o.insecure, true
	}
	if set {
		overrides.ValidateSSL = config.BoolPtr(!insecure)
	}

	compressed, set, err := lookupEnvBool("HTTPIE_COMPRESSED")
	if err != nil {
		return nil, &usageError{err: err}
	}
	if changed("compressed") {
		compressed, set = o.compressed, true
	}
	if set {
		overrides.Compressed = config.BoolPtr(compressed)
	}

	if changed("log-level") || os.Getenv("HTTPIE_LOG_LEVEL") != "" {
		overrides.LogLevel = o.logLevel
	}
	overrides.Proxy = o.proxy
	overrides.LogFile = o.logFile
	overrides.EnvFile = o.envFile

	return overrides, nil
}

// resolver loads the .env file named by --env-file or the config file, if any.
func (o *rootOptions) resolver(cfg *config.Config) (*env.Resolver, error) {
	path := cfg.EnvFile
	if path == "" {
		return env.NewResolver(nil), nil
	}

	vars, err := env.LoadDotEnv(path)
	if err != nil {
		return nil, &configError{err: err}
	}
	slog.Debug("loaded env file", "path", path, "variables", len(vars))
	return env.NewResolver(vars), nil
}

func (o *rootOptions) setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	logCfg := logging.DefaultConfig()
	logCfg.Stderr = cmd.ErrOrStderr()
	logCfg.Level = cfg.LogLevel
	logCfg.FilePath = cfg.LogFile

	cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return err
	}
	o.cleanup = cleanup
	return nil
}

func clientOptions(cfg *config.Config) ([]http.ClientOption, error) {
	timeout, err := cfg.GetTimeout()
	if err != nil {
		return nil, &configError{err: err}
	}

	opts := []http.ClientOption{
		http.WithTimeout(timeout),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithValidateSSL(cfg.GetValidateSSL()),
		http.WithCompressed(cfg.GetCompressed()),
		http.WithDefaultHeaders(cfg.Headers),
	}
	if cfg.Proxy != "" {
		opts = append(opts, http.WithProxy(cfg.Proxy))
	}
	return opts, nil
}

// send prints the request summary, performs the request and renders the response.
func (o *rootOptions) send(cmd *cobra.Command, command *parser.Command) error {
	s, err := o.prepare(cmd)
	if err != nil {
		return err
	}

	req, err := http.BuildRequestFromCommand(command, s.headers)
	if err != nil {
		return err
	}
	req.SetAuth(s.auth)

	s.printer.PrintRequest(command)

	resp, err := s.client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}

	return s.printer.PrintResponse(resp)
}
