package model

import "time"

// Config is the complete clauselens configuration
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Redaction  RedactionConfig  `yaml:"redaction"`
	LLM        LLMConfig        `yaml:"llm"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Cache      CacheConfig      `yaml:"cache"`
	Proxy      ProxyConfig      `yaml:"proxy"`
	Output     OutputConfig     `yaml:"output"`
}

// ExtractionConfig configures the delegated layout extraction capability.
// An empty ServiceURL disables the delegated path; extraction then runs
// through the embedded plain-text parser only.
type ExtractionConfig struct {
	ServiceURL string        `yaml:"service_url"`
	APIKey     string        `yaml:"api_key"`
	Timeout    time.Duration `yaml:"timeout"`
}

// RedactionConfig configures the delegated PII redaction capability.
// An empty ServiceURL means the regex fallback handles all redaction.
type RedactionConfig struct {
	ServiceURL string        `yaml:"service_url"`
	APIKey     string        `yaml:"api_key"`
	Timeout    time.Duration `yaml:"timeout"`
}

// LLMConfig configures the text generation capability
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "anthropic", "ollama", "" = disabled
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// PipelineConfig bounds the analysis pipeline
type PipelineConfig struct {
	PageWorkers      int     `yaml:"page_workers"`       // concurrent per-page analyses
	SegmentBatchSize int     `yaml:"segment_batch_size"` // max segments per delegated labeling call
	MinPageChars     int     `yaml:"min_page_chars"`     // below this a page gets a minimal entry
	MaxDocChars      int     `yaml:"max_doc_chars"`      // document text limit for generation prompts
	MinClauses       int     `yaml:"min_clauses"`        // heuristic engine floor before fillers kick in
	CapabilityRPS    float64 `yaml:"capability_rps"`     // per-capability rate limit for delegated calls
}

// CacheConfig configures the extraction result cache (outside the core
// pipeline; wraps the layout capability at the CLI layer)
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// ProxyConfig routes capability HTTP clients through proxies
type ProxyConfig struct {
	HTTP    string `yaml:"http"`
	HTTPS   string `yaml:"https"`
	NoProxy string `yaml:"no_proxy"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Timeout: 60 * time.Second,
		},
		Redaction: RedactionConfig{
			Timeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default; heuristic engine takes over
			Timeout:   30,
			MaxTokens: 4000,
		},
		Pipeline: PipelineConfig{
			PageWorkers:      4,
			SegmentBatchSize: 50,
			MinPageChars:     50,
			MaxDocChars:      100_000,
			MinClauses:       4,
			CapabilityRPS:    5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
