package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tbw875/batch-address-screen/internal/addr"
	cfgpkg "github.com/tbw875/batch-address-screen/internal/config"
	"github.com/tbw875/batch-address-screen/internal/logging"
	"github.com/tbw875/batch-address-screen/internal/normalize"
	"github.com/tbw875/batch-address-screen/internal/screen"
	"github.com/tbw875/batch-address-screen/pkg/csvio"
)

var (
	// version is set via -ldflags "-X main.version=..."
	version = "dev"
	// exit is aliased to os.Exit to allow overriding in tests.
	exit = os.Exit
	// function variables allow tests to inject stubs
	newScreener func(opts screen.Options, token string) (runner, error)
)

type runner interface {
	Run(ctx context.Context, addresses []string) (*normalize.Table, screen.Summary, error)
}

func defaultNewScreener(opts screen.Options, token string) (runner, error) {
	return screen.New(opts, token)
}

func wireDefaults() { newScreener = defaultNewScreener }

func init() { wireDefaults() }

// printUsage prints a detailed CLI help with env mappings and examples.
func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "\nUsage:\n  %s --input addresses.csv [flags]\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(flag.CommandLine.Output(), "\nEnvironment variables (defaults):")
	fmt.Fprintln(flag.CommandLine.Output(), "  API_KEY          Risk API token (required; .env is read if present)")
	fmt.Fprintln(flag.CommandLine.Output(), "  CHAINALYSIS_URL  API base URL (default https://api.chainalysis.com)")
	fmt.Fprintln(flag.CommandLine.Output(), "  SCREEN_TIMEOUT   Per-request timeout (default 60s)")
	fmt.Fprintln(flag.CommandLine.Output(), "  RATE_LIMIT       API rate limit (req/s, default 0 = unlimited)")
	fmt.Fprintln(flag.CommandLine.Output(), "  RAW_JSON         Raw response archive (default results/responses.json)")
	fmt.Fprintln(flag.CommandLine.Output(), "  OUTPUT_CSV       Output table path")
	fmt.Fprintln(flag.CommandLine.Output(), "  LOG_FILE         JSON log destination (default logs/progress.log)")
	fmt.Fprintln(flag.CommandLine.Output(), "\nExamples:")
	fmt.Fprintln(flag.CommandLine.Output(), "  Screen a batch of addresses:")
	fmt.Fprintln(flag.CommandLine.Output(), "    screener --input addresses.csv --output results/screened.csv")
	fmt.Fprintln(flag.CommandLine.Output(), "  Re-run normalization from a saved raw batch, no API calls:")
	fmt.Fprintln(flag.CommandLine.Output(), "    screener --replay results/responses.json --output results/screened.csv")
}

func main() {
	defaults := cfgpkg.Load()
	var (
		input       string
		output      string
		rawPath     string
		baseURL     string
		rateLimit   int
		timeout     = defaults.Timeout
		logFile     string
		replay      string
		noProgress  bool
		dryRun      bool
		showVersion bool
	)

	flag.Usage = printUsage
	flag.StringVar(&input, "input", "", "Input CSV with an `address` column [required unless --replay]")
	flag.StringVar(&output, "output", defaults.OutputCSVPath, "Output CSV path (OUTPUT_CSV)")
	flag.StringVar(&rawPath, "raw", defaults.RawJSONPath, "Raw JSON archive path (RAW_JSON, empty to skip)")
	flag.StringVar(&baseURL, "base-url", defaults.BaseURL, "Risk API base URL (CHAINALYSIS_URL)")
	flag.IntVar(&rateLimit, "rate-limit", defaults.RateLimit, "API rate limit (req/s, 0 = unlimited)")
	flag.DurationVar(&timeout, "timeout", defaults.Timeout, "Per-request timeout (SCREEN_TIMEOUT)")
	flag.StringVar(&logFile, "log-file", defaults.LogFile, "JSON log file (LOG_FILE, empty for stderr)")
	flag.StringVar(&replay, "replay", "", "Normalize a saved raw JSON batch instead of calling the API")
	flag.BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	flag.BoolVar(&dryRun, "dry-run", false, "Print plan and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	if input == "" && replay == "" {
		fmt.Fprintln(os.Stderr, "missing --input (CSV with an address column); see --help")
		exit(2)
	}

	if dryRun {
		plan := map[string]any{
			"input":      input,
			"replay":     replay,
			"output":     output,
			"raw":        rawPath,
			"base_url":   baseURL,
			"rate_limit": rateLimit,
			"timeout":    timeout.String(),
			"api_key":    cfgpkg.RedactToken(defaults.APIKey),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(plan)
		return
	}

	if logFile != "" {
		closeLog, err := logging.ToFile(logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
			exit(1)
		}
		defer func() { _ = closeLog() }()
	}

	if replay != "" {
		docs, err := screen.LoadRaw(replay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay error: %v\n", err)
			exit(1)
		}
		table, rep := normalize.Normalize(docs)
		if err := csvio.WriteTable(output, table); err != nil {
			fmt.Fprintf(os.Stderr, "output error: %v\n", err)
			exit(1)
		}
		fmt.Printf("ok: %d rows -> %s (documents %d, dropped %d)\n", table.Len(), output, rep.Documents, rep.Dropped)
		return
	}

	if defaults.APIKey == "" {
		fmt.Fprintln(os.Stderr, "API_KEY is not set; add it to .env or the environment")
		exit(2)
	}

	addresses, err := csvio.ReadAddresses(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		exit(1)
	}
	for i := range addresses {
		addresses[i] = addr.Normalize(addresses[i])
	}

	opts := screen.Options{
		BaseURL:   baseURL,
		Timeout:   timeout,
		RateLimit: rateLimit,
		RawPath:   rawPath,
	}
	if !noProgress {
		opts.Progress = os.Stderr
	}

	scr, err := newScreener(opts, defaults.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "provider error: %v\n", err)
		exit(1)
	}
	table, sum, err := scr.Run(context.Background(), addresses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "screening error: %v\n", err)
		exit(1)
	}
	if err := csvio.WriteTable(output, table); err != nil {
		fmt.Fprintf(os.Stderr, "output error: %v\n", err)
		exit(1)
	}
	fmt.Printf("ok: %d rows -> %s (screened %d, skipped %d, dropped %d)\n",
		sum.Rows, output, sum.Screened, sum.Skipped, sum.Dropped)
}
