// Package config defines the assistant's configuration file format and the
// loading pipeline: YAML parse, environment variable expansion,
// mapstructure decode, defaults, validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration stored at ~/.hevo/config.yaml.
type Config struct {
	Hevo  HevoConfig  `yaml:"hevo" mapstructure:"hevo" json:"hevo"`
	LLM   LLMConfig   `yaml:"llm" mapstructure:"llm" json:"llm"`
	RAG   RAGConfig   `yaml:"rag" mapstructure:"rag" json:"rag"`
	Agent AgentConfig `yaml:"agent" mapstructure:"agent" json:"agent"`

	// LogLevel controls slog verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" mapstructure:"log_level" json:"log_level,omitempty"`
}

// HevoConfig holds Hevo API credentials and region selection.
type HevoConfig struct {
	APIKey    string `yaml:"api_key" mapstructure:"api_key" json:"api_key"`
	APISecret string `yaml:"api_secret" mapstructure:"api_secret" json:"api_secret"`
	Region    string `yaml:"region" mapstructure:"region" json:"region"`

	// RequestsPerMinute caps outbound API calls. Hevo's public quota is 100.
	RequestsPerMinute int `yaml:"requests_per_minute,omitempty" mapstructure:"requests_per_minute" json:"requests_per_minute,omitempty"`
}

// LLMConfig selects and configures the language model provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider" json:"provider"`
	APIKey      string  `yaml:"api_key" mapstructure:"api_key" json:"api_key"`
	Host        string  `yaml:"host,omitempty" mapstructure:"host" json:"host,omitempty"`
	Model       string  `yaml:"model" mapstructure:"model" json:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature" json:"temperature"`
	MaxTokens   int     `yaml:"max_tokens,omitempty" mapstructure:"max_tokens" json:"max_tokens,omitempty"`
	Timeout     int     `yaml:"timeout,omitempty" mapstructure:"timeout" json:"timeout,omitempty"`
}

// RAGConfig configures documentation retrieval.
type RAGConfig struct {
	Backend        string `yaml:"backend" mapstructure:"backend" json:"backend"`
	PineconeAPIKey string `yaml:"pinecone_api_key,omitempty" mapstructure:"pinecone_api_key" json:"pinecone_api_key,omitempty"`
	PineconeIndex  string `yaml:"pinecone_index,omitempty" mapstructure:"pinecone_index" json:"pinecone_index,omitempty"`
	QdrantHost     string `yaml:"qdrant_host,omitempty" mapstructure:"qdrant_host" json:"qdrant_host,omitempty"`
	QdrantPort     int    `yaml:"qdrant_port,omitempty" mapstructure:"qdrant_port" json:"qdrant_port,omitempty"`
	DBPath         string `yaml:"db_path,omitempty" mapstructure:"db_path" json:"db_path,omitempty"`
	ChunkSize      int    `yaml:"chunk_size" mapstructure:"chunk_size" json:"chunk_size"`
	ChunkOverlap   int    `yaml:"chunk_overlap" mapstructure:"chunk_overlap" json:"chunk_overlap"`
	TopK           int    `yaml:"top_k" mapstructure:"top_k" json:"top_k"`

	EmbedderProvider  string `yaml:"embedder_provider,omitempty" mapstructure:"embedder_provider" json:"embedder_provider,omitempty"`
	EmbedderModel     string `yaml:"embedder_model,omitempty" mapstructure:"embedder_model" json:"embedder_model,omitempty"`
	EmbedderHost      string `yaml:"embedder_host,omitempty" mapstructure:"embedder_host" json:"embedder_host,omitempty"`
	EmbedderAPIKey    string `yaml:"embedder_api_key,omitempty" mapstructure:"embedder_api_key" json:"embedder_api_key,omitempty"`
	EmbedderDimension int    `yaml:"embedder_dimension,omitempty" mapstructure:"embedder_dimension" json:"embedder_dimension,omitempty"`

	LastUpdated string `yaml:"last_updated,omitempty" mapstructure:"last_updated" json:"last_updated,omitempty"`
}

// AgentConfig configures the two agent models.
type AgentConfig struct {
	CoordinatorModel       string  `yaml:"coordinator_model" mapstructure:"coordinator_model" json:"coordinator_model"`
	CoordinatorTemperature float64 `yaml:"coordinator_temperature" mapstructure:"coordinator_temperature" json:"coordinator_temperature"`
	ExecutorModel          string  `yaml:"executor_model" mapstructure:"executor_model" json:"executor_model"`
	ExecutorTemperature    float64 `yaml:"executor_temperature" mapstructure:"executor_temperature" json:"executor_temperature"`
	Enabled                bool    `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
}

// SetDefaults fills zero values with working defaults.
func (c *Config) SetDefaults() {
	if c.Hevo.Region == "" {
		c.Hevo.Region = "us"
	}
	if c.Hevo.RequestsPerMinute == 0 {
		c.Hevo.RequestsPerMinute = 100
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60
	}
	if c.RAG.Backend == "" {
		c.RAG.Backend = "chromem"
	}
	if c.RAG.PineconeIndex == "" {
		c.RAG.PineconeIndex = "hevo-docs"
	}
	if c.RAG.QdrantHost == "" {
		c.RAG.QdrantHost = "localhost"
	}
	if c.RAG.QdrantPort == 0 {
		c.RAG.QdrantPort = 6334
	}
	if c.RAG.DBPath == "" {
		c.RAG.DBPath = filepath.Join(Dir(), "docs_db")
	}
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = 500
	}
	if c.RAG.ChunkOverlap == 0 {
		c.RAG.ChunkOverlap = 50
	}
	if c.RAG.TopK == 0 {
		c.RAG.TopK = 5
	}
	if c.RAG.EmbedderProvider == "" {
		c.RAG.EmbedderProvider = "openai"
	}
	if c.Agent.CoordinatorModel == "" {
		c.Agent.CoordinatorModel = "gpt-4"
	}
	if c.Agent.CoordinatorTemperature == 0 {
		c.Agent.CoordinatorTemperature = 0.7
	}
	if c.Agent.ExecutorModel == "" {
		c.Agent.ExecutorModel = "gpt-3.5-turbo"
	}
	if c.Agent.ExecutorTemperature == 0 {
		c.Agent.ExecutorTemperature = 0.2
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

var validRegions = map[string]bool{
	"us": true, "us2": true, "eu": true, "in": true,
	"asia": true, "au": true, "apac": true,
}

var validProviders = map[string]bool{
	"openai": true, "anthropic": true, "ollama": true, "gemini": true,
}

// Validate rejects configurations that cannot work.
func (c *Config) Validate() error {
	if !validRegions[c.Hevo.Region] {
		return fmt.Errorf("invalid region %q (valid: us, us2, eu, in, asia, au, apac)", c.Hevo.Region)
	}
	if !validProviders[c.LLM.Provider] {
		return fmt.Errorf("invalid llm provider %q (valid: openai, anthropic, ollama, gemini)", c.LLM.Provider)
	}
	switch c.RAG.Backend {
	case "chromem", "qdrant", "pinecone":
	default:
		return fmt.Errorf("invalid rag backend %q (valid: chromem, qdrant, pinecone)", c.RAG.Backend)
	}
	if c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)",
			c.RAG.ChunkOverlap, c.RAG.ChunkSize)
	}
	return nil
}

// IsReady reports whether the assistant can serve chat/ask sessions, and
// lists what is missing when it cannot.
func (c *Config) IsReady() (bool, []string) {
	var missing []string
	if c.Hevo.APIKey == "" {
		missing = append(missing, "Hevo API key (run 'hevoctl setup')")
	}
	if c.Hevo.APISecret == "" {
		missing = append(missing, "Hevo API secret (run 'hevoctl setup')")
	}
	if c.LLM.Provider != "ollama" && c.LLM.APIKey == "" {
		missing = append(missing, fmt.Sprintf("%s API key (run 'hevoctl setup')", c.LLM.Provider))
	}
	return len(missing) == 0, missing
}

// Dir returns the configuration directory, ~/.hevo.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hevo"
	}
	return filepath.Join(home, ".hevo")
}

// Path returns the configuration file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}
