// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/hospitium"
	"github.com/poiesic/hospitium/ai"
)

func main() {
	app := &cli.App{
		Name:  "hospitium",
		Usage: "Hospital locator assistant over a CSV network dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file if it exists",
				Value: ".env",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Interactive conversation session",
				Action: chatCommand,
				Flags:  assistantFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Answer a single query and exit",
				ArgsUsage: "<query>",
				Action:    askCommand,
				Flags:     assistantFlags(),
			},
			{
				Name:   "index",
				Usage:  "Build the search index and cache it for fast startup",
				Action: indexCommand,
				Flags:  assistantFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func assistantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to the hospital CSV dataset",
			Value:   "hospitals.csv",
			EnvVars: []string{"HOSPITAL_DATA"},
		},
		&cli.StringFlag{
			Name:    "cache-dir",
			Usage:   "Directory for the index snapshot cache (empty disables caching)",
			EnvVars: []string{"HOSPITIUM_CACHE_DIR"},
		},
		&cli.StringFlag{
			Name:    "llm-host",
			Usage:   "OpenAI-compatible chat service host",
			Value:   "http://localhost:11434",
			EnvVars: []string{"OLLAMA_HOST"},
		},
		&cli.StringFlag{
			Name:    "llm-model",
			Usage:   "Chat model identifier",
			Value:   "llama3.2",
			EnvVars: []string{"OLLAMA_MODEL"},
		},
	}
}

// setup loads the optional .env file and configures the default logger.
func setup(c *cli.Context) error {
	if envFile := c.String("env-file"); envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
		}
	}
	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func newAssistant(c *cli.Context) (*hospitium.Assistant, error) {
	opts := []hospitium.Option{
		hospitium.WithAIConfig(ai.NewConfig(
			ai.WithChatHost(c.String("llm-host")),
			ai.WithChatModel(c.String("llm-model")),
		)),
	}
	if dir := c.String("cache-dir"); dir != "" {
		opts = append(opts, hospitium.WithCacheDir(dir))
	}
	return hospitium.New(c.String("catalog"), opts...)
}

func chatCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	session, err := assistant.NewSession()
	if err != nil {
		return err
	}

	fmt.Println("Type a question, 'reset' to start over, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "reset":
			session.Reset()
			fmt.Println("Session reset.")
			continue
		}

		reply, _ := session.Handle(c.Context, line)
		fmt.Println(reply)
	}
	return scanner.Err()
}

func askCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("usage: hospitium ask <query>")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	session, err := assistant.NewSession()
	if err != nil {
		return err
	}

	reply, results := session.Handle(c.Context, query)
	fmt.Println(reply)
	for i, r := range results {
		fmt.Printf("%d: %s, %s (%s) [%0.3f %s]\n",
			i+1, r.Record.Name, r.Record.City, r.Record.Address, r.Score, r.Relevance)
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	if c.String("cache-dir") == "" {
		return fmt.Errorf("index requires --cache-dir")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	fmt.Printf("Indexed %d hospitals (catalog %d)\n",
		assistant.Index().Len(), assistant.Catalog().ID())
	return nil
}
