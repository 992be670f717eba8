package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/turnsignal/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	outKey               = "out"
	genericParamCountKey = "count"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed Compute helpers for tr",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the generated code to",
				Value: "tr/compute_gen.go",
			},
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of typed sources to generate helpers up to",
				Value: 4,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for tr started !")
	defer func() {
		log.Printf("Codegen for tr finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	out := cmd.String(outKey)
	log.Printf("Sources: 1..%d -> %s", count, out)

	contents, err := format.Source([]byte(templates.ComputeGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
