package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ZebulonRouseFrantzich/minisig64/internal/config"
	flag "github.com/spf13/pflag"
)

// options holds parsed command-line state.
type options struct {
	configPath string
	zigVersion string
	zigOS      string
	zigArch    string
	zigMirror  string
	variable   string
	userAgent  string
	timeout    time.Duration
	timeoutSet bool

	strict      bool
	printURL    bool
	verbose     bool
	showVersion bool
	help        bool

	args  []string
	flags *flag.FlagSet
}

// usageError means the command line was wrong; the caller prints usage.
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	if e.reason == "" {
		return "invalid usage"
	}
	return e.reason
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("minisig64", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(&opts.zigVersion, "zig-version", "", "build the URL of this Zig release's signature instead of taking one")
	fs.StringVar(&opts.zigOS, "zig-os", "", "Zig OS name for --zig-version (default: detected)")
	fs.StringVar(&opts.zigArch, "zig-arch", "", "Zig CPU name for --zig-version (default: detected)")
	fs.StringVar(&opts.zigMirror, "zig-mirror", "", "Zig download host (default \"https://ziglang.org\")")
	fs.StringVar(&opts.variable, "variable", "", "shell variable naming the output file (default \"ZIG_ARCHIVE_SIGNATURE_BASE64_FILENAME\")")
	fs.DurationVar(&opts.timeout, "timeout", 0, "request timeout, 0 for none")
	fs.StringVar(&opts.userAgent, "user-agent", "", "User-Agent header for the download")
	fs.BoolVar(&opts.strict, "strict", false, "fail unless the content is a minisign or OpenPGP signature")
	fs.BoolVar(&opts.printURL, "print-url", false, "print the resolved URL and exit without fetching")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Lua config file (default $"+config.EnvConfigPath+")")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "show this help")
	return fs
}

// parseFlags parses args into options. Parse failures are usage errors.
func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts)
	opts.flags = fs

	if err := fs.Parse(args); err != nil {
		return nil, &usageError{reason: err.Error()}
	}
	opts.args = fs.Args()
	opts.timeoutSet = fs.Changed("timeout")
	if opts.timeoutSet && opts.timeout < 0 {
		return nil, &usageError{reason: "--timeout must not be negative"}
	}
	return opts, nil
}

// overrides returns the config values given explicitly on the command line.
func (o *options) overrides() config.Config {
	return config.Config{
		Variable:  o.variable,
		UserAgent: o.userAgent,
		Timeout:   o.timeout,
		Zig: config.ZigConfig{
			Mirror:  o.zigMirror,
			Version: o.zigVersion,
			OS:      o.zigOS,
			Arch:    o.zigArch,
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: minisig64 [flags] <minisig_url>")
	fmt.Fprintln(w, "       minisig64 [flags] --zig-version <version>")
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "minisig64 - embed a detached signature in a Dockerfile as base64 echo lines")
	fmt.Fprintln(w)
	printUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  minisig64 'https://ziglang.org/download/0.14.0/zig-linux-x86_64-0.14.0.tar.xz.minisig'")
	fmt.Fprintln(w, "  minisig64 --zig-version 0.15.1 --zig-arch aarch64")
}
