package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"talentscout/internal/logging"
	"talentscout/pkg/utils"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider"`
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens"`
		Temperature float64       `yaml:"temperature"`
		Timeout     time.Duration `yaml:"timeout"`
		RateLimit   int           `yaml:"rate_limit"` // requests per minute
	} `yaml:"llm"`

	Questions struct {
		DatasetPath      string `yaml:"dataset_path"`
		HRQuestionLimit  int    `yaml:"hr_question_limit"`
		MaxTechnologies  int    `yaml:"max_technologies"`
		MaxPerTechnology int    `yaml:"max_per_technology"`
	} `yaml:"questions"`

	Sessions struct {
		IdleTTL         time.Duration `yaml:"idle_ttl"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
	} `yaml:"sessions"`

	Export struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"export"`

	Logging struct {
		Level    string                  `yaml:"level"`
		Format   string                  `yaml:"format"`
		Adapters []logging.AdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := defaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}

		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func defaultConfig() *Config {
	config := &Config{}

	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Provider = "groq"
	config.LLM.BaseURL = "https://api.groq.com/openai/v1"
	config.LLM.Model = "llama3-70b-8192"
	config.LLM.MaxTokens = 1024
	config.LLM.Temperature = 0.3
	config.LLM.Timeout = 120 * time.Second
	config.LLM.RateLimit = 60

	config.Questions.DatasetPath = "data/hr_questions.json"
	config.Questions.HRQuestionLimit = 3
	config.Questions.MaxTechnologies = 5
	config.Questions.MaxPerTechnology = 5

	config.Sessions.IdleTTL = 1 * time.Hour
	config.Sessions.CleanupInterval = 10 * time.Minute

	config.Export.OutputDir = "candidates"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	return config
}

// applyEnvOverrides honors the bare environment variables the service has
// always accepted, even when the config file does not reference them.
func applyEnvOverrides(config *Config) {
	if config.LLM.APIKey == "" {
		if key := os.Getenv("GROQ_API_KEY"); key != "" {
			config.LLM.APIKey = key
		} else if key := os.Getenv("LLM_API_KEY"); key != "" {
			config.LLM.APIKey = key
		}
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
}

// Validate checks that startup-fatal requirements are met: a usable API
// credential and a readable dataset path.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key is required - set GROQ_API_KEY (or LLM_API_KEY) or llm.api_key")
	}
	if !utils.Contains([]string{"groq", "claude"}, c.LLM.Provider) {
		return fmt.Errorf("unsupported LLM provider: %s", c.LLM.Provider)
	}
	if c.Questions.DatasetPath == "" {
		return fmt.Errorf("questions.dataset_path is required")
	}
	if c.Questions.HRQuestionLimit <= 0 {
		return fmt.Errorf("questions.hr_question_limit must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	return nil
}
