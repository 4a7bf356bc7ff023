// Command hevoctl is a conversational CLI for Hevo data pipelines: it
// translates natural language into Hevo API calls through an LLM, grounded
// by locally indexed documentation.
//
// Usage:
//
//	hevoctl setup
//	hevoctl chat
//	hevoctl ask "pause the Salesforce pipeline"
//	hevoctl docs index ./hevo-docs
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/logger"
)

// CLI defines the command-line interface.
type CLI struct {
	Setup   SetupCmd   `cmd:"" help:"Interactive first-time configuration."`
	Config  ConfigCmd  `cmd:"" help:"Inspect the configuration."`
	Docs    DocsCmd    `cmd:"" help:"Manage the documentation index."`
	Chat    ChatCmd    `cmd:"" help:"Start an interactive chat session."`
	Ask     AskCmd     `cmd:"" help:"Ask a single question and exit."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	ConfigPath string `short:"c" name:"config" help:"Path to config file." type:"path"`
	LogLevel   string `help:"Log level (debug, info, warn, error)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	fmt.Printf("hevoctl version %s\n", version)
	return nil
}

// loadConfig resolves the config path and loads the file.
func (cli *CLI) loadConfig() (*config.Config, error) {
	path := cli.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), os.Stderr)
	return cfg, nil
}

// configPath returns the path the current invocation reads and writes.
func (cli *CLI) configPath() string {
	if cli.ConfigPath != "" {
		return cli.ConfigPath
	}
	return config.Path()
}

// requireReady loads the config and refuses to proceed when credentials
// are missing.
func (cli *CLI) requireReady() (*config.Config, error) {
	cfg, err := cli.loadConfig()
	if err != nil {
		return nil, err
	}
	if ready, missing := cfg.IsReady(); !ready {
		fmt.Fprintln(os.Stderr, "hevoctl is not configured yet. Missing:")
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", m)
		}
		return nil, fmt.Errorf("configuration incomplete")
	}
	return cfg, nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("hevoctl"),
		kong.Description("Conversational CLI for Hevo data pipelines."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
