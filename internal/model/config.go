package model

import "time"

// Config holds the full docket configuration
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnalysisConfig tunes the extraction and constraint engine
type AnalysisConfig struct {
	// NoticePeriodDays is the minimum service-to-hearing gap before an
	// insufficient-notice violation fires
	NoticePeriodDays int `yaml:"notice_period_days" json:"notice_period_days"`

	// ContextRadius is how many characters around a date match are kept
	// as the classification window
	ContextRadius int `yaml:"context_radius" json:"context_radius"`

	// SignatureWindow is how far past a signature block to scan for an
	// associated date
	SignatureWindow int `yaml:"signature_window" json:"signature_window"`
}

// LLMConfig configures the optional external entity extractor
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama, "" = disabled
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // Never serialized; from env
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // Seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`

	// Proxy settings for the hand-rolled HTTP providers
	HTTPProxy  string `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig configures caching of external extractor responses
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig tunes batch processing and provider rate limiting
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers" json:"batch_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
	NoColor       bool `yaml:"no_color" json:"no_color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			NoticePeriodDays: 7,
			ContextRadius:    60,
			SignatureWindow:  200,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 2000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.docket/cache at load time
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      4,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
