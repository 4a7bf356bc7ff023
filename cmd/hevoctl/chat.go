package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
)

// ChatCmd runs an interactive conversation until the user quits.
type ChatCmd struct{}

func (c *ChatCmd) Run(cli *CLI) error {
	cfg, err := cli.requireReady()
	if err != nil {
		return err
	}
	application, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("hevoctl chat - talk to your Hevo pipelines in plain English.")
	fmt.Println("Type 'exit', 'quit' or 'q' to leave.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			return nil
		}

		response := application.turn(ctx, line)
		fmt.Println(response)
		fmt.Println()

		if ctx.Err() != nil {
			return nil
		}
	}
}

// AskCmd answers a single question and exits.
type AskCmd struct {
	Question []string `arg:"" help:"The question or instruction."`
}

func (c *AskCmd) Run(cli *CLI) error {
	cfg, err := cli.requireReady()
	if err != nil {
		return err
	}
	application, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(application.turn(ctx, strings.Join(c.Question, " ")))
	return nil
}
