package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tubelang/internal/api"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var explain bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify [title...]",
		Short: "Classify titles by language (reads stdin lines when no titles are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			titles := args
			if len(titles) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read titles: %w", err)
				}
				titles = lines
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			resp := api.NewService(cfg, nil, ctx.logger()).Classify(api.ClassifyRequest{
				Titles:  titles,
				Explain: explain,
			})

			if jsonOutput {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			for _, r := range resp.Results {
				if explain {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.Verdict, r.Rule, r.Title)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", r.Verdict, r.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Include the rule that produced each verdict")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
