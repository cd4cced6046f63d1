package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Gather struct {
		LookbackYears int                 `yaml:"lookback_years"`
		SourceDelay   time.Duration       `yaml:"source_delay"`
		SocialLimit   int                 `yaml:"social_limit"`
		Agents        map[string][]string `yaml:"agents"`
	} `yaml:"gather"`
	SEC struct {
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		CIKTTL    time.Duration `yaml:"cik_cache_ttl"`
	} `yaml:"sec"`
	Finnhub struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"finnhub"`
	Reddit struct {
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"reddit"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		ReindexTopic string   `yaml:"reindex_topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		Table            string        `yaml:"table"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("SEC_USER_AGENT"); v != "" {
		c.SEC.UserAgent = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_REINDEX_TOPIC"); v != "" {
		c.Kafka.ReindexTopic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Gather.LookbackYears == 0 {
		c.Gather.LookbackYears = 5
	}
	if c.Gather.SourceDelay == 0 {
		c.Gather.SourceDelay = 200 * time.Millisecond
	}
	if c.Gather.SocialLimit == 0 {
		c.Gather.SocialLimit = 25
	}
	if c.Gather.Agents == nil {
		c.Gather.Agents = map[string][]string{
			"nova": {"web", "fundamentals"},
			"luna": {"social"},
			"ace":  {"technicals"},
			"max":  {},
		}
	}
	if c.SEC.Timeout == 0 {
		c.SEC.Timeout = 15 * time.Second
	}
	if c.SEC.CIKTTL == 0 {
		c.SEC.CIKTTL = 24 * time.Hour
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 15 * time.Second
	}
	if c.Reddit.Timeout == 0 {
		c.Reddit.Timeout = 15 * time.Second
	}
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = "fingather/1.0"
	}
	if c.ClickHouse.Table == "" {
		c.ClickHouse.Table = "fingather.research_documents"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.SEC.UserAgent == "" {
		return fmt.Errorf("sec.user_agent is required (SEC fair-access policy)")
	}
	if c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty")
	}
	if c.Kafka.ReindexTopic == "" {
		return fmt.Errorf("kafka.reindex_topic is required")
	}
	for agent, sources := range c.Gather.Agents {
		for _, s := range sources {
			switch s {
			case "web", "fundamentals", "social", "technicals":
			default:
				return fmt.Errorf("agent %q references unknown source %q", agent, s)
			}
		}
	}
	return nil
}
