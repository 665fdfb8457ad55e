package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tubelang/internal/api"
	"tubelang/internal/filter"
	"tubelang/internal/language"
	"tubelang/internal/preferences"
)

func newDecideCommand(ctx *commandContext) *cobra.Command {
	var (
		langs       string
		showUnknown bool
		hints       []string
		pageURL     string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "decide <verdict>",
		Short: "Report whether a verdict is hidden under the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdict, ok := language.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown verdict %q (want one of en, es, fr, zh, unknown)", args[0])
			}

			var settings preferences.Settings
			if err := ctx.withService(func(svc *api.Service) error {
				resp, err := svc.Settings(cmd.Context())
				settings = resp.Settings
				return err
			}); err != nil {
				return err
			}

			if cmd.Flags().Changed("lang") {
				settings.SelectedLanguages = preferences.NormalizeList(preferences.ParseLanguageList(langs))
			}
			if cmd.Flags().Changed("show-unknown") {
				settings.ShowUnknown = showUnknown
			}

			searchHints := filter.HintsFromURL(pageURL)
			for _, value := range hints {
				searchHints = append(searchHints, filter.SearchHints(value)...)
			}

			hidden, reason := filter.Explain(verdict, settings, searchHints)
			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"verdict": verdict,
					"hidden":  hidden,
					"reason":  reason,
				})
			}
			state := "visible"
			if hidden {
				state = "hidden"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", state, reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&langs, "lang", "", "Comma-separated selected languages (overrides stored settings)")
	cmd.Flags().BoolVar(&showUnknown, "show-unknown", true, "Keep titles with an unknown verdict visible")
	cmd.Flags().StringSliceVar(&hints, "hint", nil, "Search query text to mine for language hints (repeatable)")
	cmd.Flags().StringVar(&pageURL, "url", "", "Page URL whose search query provides hints")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
