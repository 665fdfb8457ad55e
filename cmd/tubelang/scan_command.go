package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"tubelang/internal/api"
	"tubelang/internal/language"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var pageURL string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <file.html|->",
		Short: "Evaluate every card in a saved listing page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader
			if args[0] == "-" {
				input = cmd.InOrStdin()
			} else {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open listing: %w", err)
				}
				defer file.Close()
				input = file
			}

			var resp api.ScanResponse
			if err := ctx.withService(func(svc *api.Service) error {
				var err error
				resp, err = svc.Scan(cmd.Context(), input, pageURL)
				return err
			}); err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderScan(resp, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "Original page URL (search results provide language hints)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

const hiddenColumn = 3

func renderScan(resp api.ScanResponse, colorize bool) string {
	if len(resp.Results) == 0 {
		return "No video cards found\n"
	}
	rows := make([][]string, 0, len(resp.Results))
	for i, r := range resp.Results {
		source := ""
		if i < len(resp.Cards) {
			source = string(resp.Cards[i].Source)
		}
		rows = append(rows, []string{
			r.ID,
			string(r.Verdict),
			language.DisplayName(r.Verdict),
			yesNo(r.Hidden),
			string(r.Reason),
			source,
			r.Title,
		})
	}

	var b strings.Builder
	b.WriteString(renderTable(
		[]string{"ID", "Verdict", "Language", "Hidden", "Reason", "Source", "Title"},
		rows,
		nil,
		tableStyle{
			colorize: colorize,
			dimRow:   func(row table.Row) bool { return cell(row, hiddenColumn) == "yes" },
			maxWidth: map[int]int{6: 60},
		},
	))
	b.WriteByte('\n')

	langs := make([]string, 0, len(resp.Settings.SelectedLanguages))
	for _, code := range resp.Settings.SelectedLanguages {
		langs = append(langs, string(code))
	}
	fmt.Fprintf(&b, "%d cards, %d hidden (selected: %s, show unknown: %s)\n",
		len(resp.Results), resp.Hidden, strings.Join(langs, ","), yesNo(resp.Settings.ShowUnknown))
	if len(resp.Hints) > 0 {
		hints := make([]string, 0, len(resp.Hints))
		for _, code := range resp.Hints {
			hints = append(hints, string(code))
		}
		fmt.Fprintf(&b, "Search hints: %s\n", strings.Join(hints, ","))
	}
	return b.String()
}
