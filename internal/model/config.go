package model

import "time"

// Config holds the complete obitwatch configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Crawl       CrawlConfig       `yaml:"crawl"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// HTTPConfig controls page fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// CacheConfig controls page body caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Dir     string        `yaml:"dir"` // Disk cache directory; empty disables the disk layer
}

// CrawlConfig controls politeness toward the source site
type CrawlConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	RespectRobots     bool    `yaml:"respect_robots"`
}

// ConcurrencyConfig controls parallelism
type ConcurrencyConfig struct {
	FetchWorkers int `yaml:"fetch_workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	JSONPath string `yaml:"json_path"` // Optional JSON report path
}

// LLMConfig controls the optional digest generation
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "" disables the digest
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // Never persisted; taken from the environment
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "obitwatch/0.1 (+https://github.com/obitwatch/obitwatch)",
			MaxBodyBytes: 4_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     6 * time.Hour,
		},
		Crawl: CrawlConfig{
			RequestsPerSecond: 1,
			Burst:             2,
			RespectRobots:     true,
		},
		Concurrency: ConcurrencyConfig{
			FetchWorkers: 4,
		},
		Output: OutputConfig{},
		LLM: LLMConfig{
			MaxTokens: 800,
			Timeout:   30,
		},
	}
}
