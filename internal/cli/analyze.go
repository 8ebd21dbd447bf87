package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mvoren/clauselens/internal/cache"
	"github.com/mvoren/clauselens/internal/extract"
	"github.com/mvoren/clauselens/internal/llm"
	"github.com/mvoren/clauselens/internal/model"
	"github.com/mvoren/clauselens/internal/pipeline"
	"github.com/mvoren/clauselens/internal/redact"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outJSON     string
	outMD       string
	langCode    string
	timeout     time.Duration
	extractURL  string
	extractKey  string
	redactURL   string
	redactKey   string
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
	httpProxy   string
	httpsProxy  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single contract document and generate a risk report",
	Long: `Analyze reads a contract document (PDF, HTML, or plain text) and:
- Extracts text and positioned layout segments
- Redacts emails, phone numbers, and ID numbers
- Labels each segment with a risk level and plain-language explanation
- Analyzes every page for contract topics and key points
- Produces a document-level summary, clause list, and overall risk

Delegated capabilities (layout extraction, PII redaction, LLM generation)
are each optional; deterministic fallbacks cover any that are missing.

Example:
  clauselens analyze lease.pdf
  clauselens analyze lease.pdf --json report.json --md report.md
  clauselens analyze lease.pdf --lang es --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "analysis.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&langCode, "lang", "en", "output language (en, es, fr, de, pt)")

	// Pipeline flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout (increase for large documents)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh extraction)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Capability flags
	analyzeCmd.Flags().StringVar(&extractURL, "extract-url", "", "layout extraction service URL (empty = embedded plain-text extraction)")
	analyzeCmd.Flags().StringVar(&extractKey, "extract-key", "", "layout extraction service API key")
	analyzeCmd.Flags().StringVar(&redactURL, "redact-url", "", "PII redaction service URL (empty = regex redaction only)")
	analyzeCmd.Flags().StringVar(&redactKey, "redact-key", "", "PII redaction service API key")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM document analysis and segment labeling")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")

	// Proxy flags
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy for capability requests")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy for capability requests")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	lang, err := model.ParseLanguage(langCode)
	if err != nil {
		return err
	}

	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Language: %s\n", lang.Name())
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := buildPipeline(cfg)

	result, err := p.AnalyzeFile(ctx, path, lang)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Engine: %s\n", result.Engine)
		fmt.Fprintf(os.Stderr, "✓ Identified %d clauses\n", len(result.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d pages\n", len(result.PageAnalysis))
		fmt.Fprintf(os.Stderr, "✓ Labeled %d segments\n", len(result.Segments))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// configFromFlags assembles the configuration from defaults, the config
// file, flags, and environment. Flags win over the config file.
func configFromFlags() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Extraction.ServiceURL = firstOf(extractURL, viper.GetString("extraction.service_url"))
	cfg.Extraction.APIKey = firstOf(extractKey, viper.GetString("extraction.api_key"), os.Getenv("CLAUSELENS_EXTRACT_KEY"))
	cfg.Redaction.ServiceURL = firstOf(redactURL, viper.GetString("redaction.service_url"))
	cfg.Redaction.APIKey = firstOf(redactKey, viper.GetString("redaction.api_key"), os.Getenv("CLAUSELENS_REDACT_KEY"))

	cfg.Proxy.HTTP = firstOf(httpProxy, viper.GetString("proxy.http"))
	cfg.Proxy.HTTPS = firstOf(httpsProxy, viper.GetString("proxy.https"))
	cfg.Proxy.NoProxy = viper.GetString("proxy.no_proxy")

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	// Configure generation if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// buildPipeline resolves the delegated capabilities and wraps layout
// extraction with the content-hash cache when enabled
func buildPipeline(cfg *model.Config) *pipeline.Pipeline {
	var deps pipeline.Deps

	if cfg.Extraction.ServiceURL != "" {
		svc, err := extract.NewHTTPLayoutService(cfg.Extraction, cfg.Proxy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: layout service disabled: %v\n", err)
		} else if cfg.Cache.Enabled {
			deps.Layout = cache.NewLayoutCache(svc, newCacheStore(cfg), cfg.Cache.TTL)
		} else {
			deps.Layout = svc
		}
	}

	if svc := redact.NewHTTPRedactionService(cfg.Redaction, cfg.Proxy); svc != nil {
		deps.Redaction = svc
	}

	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.Proxy))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: generation provider disabled: %v\n", err)
		} else {
			deps.Generator = provider
		}
	}

	return pipeline.New(cfg, deps)
}

// newCacheStore builds the layered cache backing extraction results
func newCacheStore(cfg *model.Config) cache.Cache {
	dir := cfg.Cache.Dir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".clauselens", "cache")
		} else {
			dir = filepath.Join(os.TempDir(), "clauselens-cache")
		}
	}
	return cache.NewLayeredCache(cfg.Cache.TTL, dir, cfg.Cache.TTL)
}

// firstOf returns the first non-empty string
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
