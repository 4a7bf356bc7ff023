package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hevoctl/hevoctl/pkg/config"
)

// SetupCmd walks through first-time configuration and writes
// ~/.hevo/config.yaml with owner-only permissions.
type SetupCmd struct{}

func (c *SetupCmd) Run(cli *CLI) error {
	path := cli.configPath()
	cfg, err := config.Load(path)
	if err != nil {
		// A broken file should not block re-running setup.
		cfg = &config.Config{}
		cfg.SetDefaults()
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("hevoctl setup")
	fmt.Printf("Configuration will be saved to %s\n\n", path)

	cfg.Hevo.Region = promptDefault(reader, "Hevo region (us, us2, eu, in, asia, au)", cfg.Hevo.Region)
	if key, err := promptSecret("Hevo API key", cfg.Hevo.APIKey); err == nil {
		cfg.Hevo.APIKey = key
	} else {
		return err
	}
	if secret, err := promptSecret("Hevo API secret", cfg.Hevo.APISecret); err == nil {
		cfg.Hevo.APISecret = secret
	} else {
		return err
	}

	cfg.LLM.Provider = promptDefault(reader, "LLM provider (openai, anthropic, ollama, gemini)", cfg.LLM.Provider)
	cfg.LLM.Model = promptDefault(reader, "LLM model", cfg.LLM.Model)
	if cfg.LLM.Provider != "ollama" {
		key, err := promptSecret(fmt.Sprintf("%s API key", cfg.LLM.Provider), cfg.LLM.APIKey)
		if err != nil {
			return err
		}
		cfg.LLM.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved. Try: hevoctl ask \"list my pipelines\"\n")
	return nil
}

// promptDefault reads a line, keeping the current value on empty input.
func promptDefault(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

// promptSecret reads a value without echo. Empty input keeps the current
// value; a non-terminal stdin falls back to plain reads.
func promptSecret(label, current string) (string, error) {
	suffix := ""
	if current != "" {
		suffix = fmt.Sprintf(" [%s]", maskSecret(current))
	}
	fmt.Printf("%s%s: ", label, suffix)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return current, nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return current, nil
		}
		return line, nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return current, nil
	}
	return value, nil
}

// maskSecret keeps the last four characters visible.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
