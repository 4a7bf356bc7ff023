package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/hevoctl/hevoctl/pkg/config"
)

// ConfigCmd groups configuration inspection commands.
type ConfigCmd struct {
	Show   ConfigShowCmd   `cmd:"" help:"Print the active configuration with secrets masked."`
	Schema ConfigSchemaCmd `cmd:"" help:"Print the configuration JSON schema."`
}

// ConfigShowCmd prints the loaded configuration.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	// Secrets never hit stdout in full.
	masked := *cfg
	masked.Hevo.APIKey = maskSecret(cfg.Hevo.APIKey)
	masked.Hevo.APISecret = maskSecret(cfg.Hevo.APISecret)
	masked.LLM.APIKey = maskSecret(cfg.LLM.APIKey)
	masked.RAG.EmbedderAPIKey = maskSecret(cfg.RAG.EmbedderAPIKey)
	masked.RAG.PineconeAPIKey = maskSecret(cfg.RAG.PineconeAPIKey)

	fmt.Printf("# %s\n", cli.configPath())
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(&masked)
}

// ConfigSchemaCmd emits a JSON schema for the config file, for editor
// completion and validation.
type ConfigSchemaCmd struct {
	Compact bool `help:"Compact JSON output (no indentation)."`
}

func (c *ConfigSchemaCmd) Run() error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&config.Config{})
	schema.Title = "hevoctl configuration"
	schema.Description = "Configuration schema for ~/.hevo/config.yaml"

	encoder := json.NewEncoder(os.Stdout)
	if !c.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(schema)
}
