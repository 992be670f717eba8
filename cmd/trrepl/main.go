package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	historyKey = "history"
	promptKey  = "prompt"
)

func main() {
	cmd := &cli.Command{
		Name:  "trrepl",
		Usage: "Build and poke at a graph of tr cells",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  historyKey,
				Usage: "File to keep line history in when interactive",
				Value: filepath.Join(os.TempDir(), ".trrepl_history"),
			},
			&cli.StringFlag{
				Name:  promptKey,
				Usage: "Prompt shown when interactive",
				Value: "tr> ",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	s := newSession(os.Stdout)
	defer s.close()

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return interactive(s, cmd.String(historyKey), cmd.String(promptKey))
	}
	return script(s, os.Stdin)
}

func interactive(s *session, history, prompt string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(history)
		if err != nil {
			log.Printf("writing history: %v", err)
			return
		}
		defer f.Close()
		line.WriteHistory(f)
	}()

	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !s.exec(input) {
			return nil
		}
	}
}

// script runs commands read from r, one per line.
func script(s *session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !s.exec(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}
