package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/obitwatch/obitwatch/internal/model"
	"github.com/obitwatch/obitwatch/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	cacheDir     string
	noRobots     bool
	insecureTLS  bool
	fetchWorkers int
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <selector>...",
	Short: "Fetch deaths pages and print the merged record list",
	Long: `Fetch retrieves one or more Wikipedia deaths list pages, extracts the
death records from each, merges them, and prints one line per record.

Selectors name a page per argument and are processed in order:
  2015          the year-aggregate page "Deaths in 2015"
  2015-03       the monthly page "Deaths in March 2015"
  "March 2015"  the same monthly page, month by name
  March         that month in the current year

Example:
  obitwatch fetch 2015-03
  obitwatch fetch 2015-03 2015 --json report.json
  obitwatch fetch March --llm --llm-model gpt-4o-mini`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	// Output flags
	fetchCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")

	// HTTP flags
	fetchCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall run timeout")
	fetchCmd.Flags().StringVar(&userAgent, "ua", "obitwatch/0.1 (+https://github.com/obitwatch/obitwatch)", "HTTP User-Agent")
	fetchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 4_000_000, "max response bytes to read per page")
	fetchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	fetchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (memory-only when empty)")
	fetchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	fetchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	fetchCmd.Flags().IntVar(&fetchWorkers, "workers", 4, "concurrent page fetches")

	// LLM flags
	fetchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM digest generation")
	fetchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	fetchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Crawl.RespectRobots = !noRobots
	cfg.Concurrency.FetchWorkers = fetchWorkers
	cfg.Output.Verbose = verbose
	cfg.Output.JSONPath = outJSON

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.LLM.BaseURL = os.Getenv("OPENAI_BASE_URL")
		if cfg.LLM.APIKey == "" && cfg.LLM.BaseURL == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if cfg.LLM.APIKey == "" {
			// Local OpenAI-compatible endpoints accept any key
			cfg.LLM.APIKey = "local"
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Selectors: %v\n", args)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.Run(ctx, args)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	renderer := pipeline.NewRenderer()

	if err := renderer.RenderText(os.Stdout, report); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr)
		renderer.RenderSummary(os.Stderr, report)
	}

	return nil
}
