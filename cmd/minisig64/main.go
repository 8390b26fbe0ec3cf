// Command minisig64 prints a detached signature as base64 shell echo lines
// for embedding in a Dockerfile.
//
// Usage:
//
//	minisig64 [flags] <minisig_url>
//	minisig64 [flags] --zig-version 0.15.1
//
// Example output (first line truncated):
//
//	    echo 'dW50cnVzdGVkIGNvbW1lbnQ6IHNp...'  > "${ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME}" && \
//
// Lines go to stdout; logs and errors go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZebulonRouseFrantzich/minisig64/internal/config"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/dockerline"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/fetch"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/inspect"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/platform"
	"github.com/ZebulonRouseFrantzich/minisig64/internal/zig"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

// ErrUnrecognizedSignature is returned by --strict when the fetched bytes
// are not a known signature format.
var ErrUnrecognizedSignature = errors.New("content is not a recognized signature")

// ErrInvalidTarget wraps errors resolving a Zig release URL.
var ErrInvalidTarget = errors.New("invalid zig target")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		detector: platform.NewDetector(),
	}
	return a.exitCode(a.execute(ctx, args))
}

// app carries the I/O and collaborators of one invocation.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	detector platform.Detector
	logger   *slog.Logger
}

func (a *app) exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if uerr.reason != "" {
			fmt.Fprintf(a.stderr, "Error: %s\n", uerr.reason)
		}
		printUsage(a.stdout)
		return ExitUsage
	}

	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return exitCodeFor(err)
}

func (a *app) execute(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(a.stdout, opts.flags)
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(a.stdout, "minisig64 %s\n", Version)
		return nil
	}

	a.logger = newLogger(a.stderr, opts.verbose || os.Getenv(EnvDebug) != "")

	cfg, err := a.loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	url, err := a.resolveURL(ctx, opts, cfg)
	if err != nil {
		return err
	}

	if opts.printURL {
		fmt.Fprintln(a.stdout, url)
		return nil
	}

	fetcher := fetch.New(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithLogger(a.logger),
	)
	data, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	report := inspect.Inspect(data)
	a.logger.Info("fetched signature",
		"url", url,
		"bytes", len(data),
		"format", report.Kind.String(),
		"key_id", report.KeyID,
	)
	if opts.strict && !report.Known() {
		return fmt.Errorf("%s: %w", url, ErrUnrecognizedSignature)
	}
	if !report.Known() {
		a.logger.Warn("fetched content is not a recognized signature format", "url", url)
	}

	formatter := &dockerline.Formatter{
		Indent:   dockerline.DefaultIndent,
		Variable: cfg.Variable,
	}
	lines, err := formatter.Render(a.stdout, data)
	if err != nil {
		return err
	}
	a.logger.Debug("wrote lines", "count", lines, "variable", cfg.Variable)
	return nil
}

// loadConfig layers flags over the config file over built-in defaults.
func (a *app) loadConfig(ctx context.Context, opts *options) (config.Config, error) {
	defaults := config.Config{
		Variable:  dockerline.DefaultVariable,
		UserAgent: fetch.DefaultUserAgent,
		Zig:       config.ZigConfig{Mirror: zig.DefaultMirror},
	}

	var fileCfg config.Config
	if path := config.ResolvePath(opts.configPath); path != "" {
		parsed, err := config.NewParser(a.detector).WithLogger(a.logger).ParseFile(ctx, path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *parsed
	}

	cfg := opts.overrides().Merge(fileCfg).Merge(defaults)
	if opts.timeoutSet {
		cfg.Timeout = opts.timeout
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveURL picks the signature URL from the positional argument or, when
// none is given, from the configured Zig release.
func (a *app) resolveURL(ctx context.Context, opts *options, cfg config.Config) (string, error) {
	switch {
	case len(opts.args) > 1:
		return "", &usageError{reason: fmt.Sprintf("expected one URL, got %d arguments", len(opts.args))}
	case len(opts.args) == 1 && opts.zigVersion != "":
		return "", &usageError{reason: "a URL and --zig-version cannot be combined"}
	case len(opts.args) == 1:
		return opts.args[0], nil
	case cfg.Zig.Version == "":
		return "", &usageError{}
	}

	target := zig.Target{Version: cfg.Zig.Version, OS: cfg.Zig.OS, Arch: cfg.Zig.Arch}
	if target.OS == "" || target.Arch == "" {
		info, err := a.detector.Detect(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}
		if info == nil {
			return "", fmt.Errorf("%w: platform unknown, set --zig-os and --zig-arch", ErrInvalidTarget)
		}
		if target.OS == "" {
			target.OS = info.ZigOS
		}
		if target.Arch == "" {
			target.Arch = info.ZigArch
		}
		a.logger.Debug("detected platform", "os", info.ZigOS, "arch", info.ZigArch, "kernel_arch", info.KernelArch)
	}

	archive, err := zig.Resolve(target, cfg.Zig.Mirror)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	a.logger.Debug("resolved zig archive", "archive", archive.Name, "url", archive.SignatureURL)
	return archive.SignatureURL, nil
}
