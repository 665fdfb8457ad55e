package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tubelang/internal/api"
	"tubelang/internal/preferences"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the stored filter settings",
	}

	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	settingsCmd.AddCommand(newSettingsResetCommand(ctx))

	return settingsCmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				resp, err := svc.Settings(cmd.Context())
				if err != nil {
					return err
				}
				return printSettings(cmd, resp, jsonOutput)
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	var (
		langs          string
		enabled        bool
		showUnknown    bool
		keepSubscribed bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings; only the given flags are updated",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var raw preferences.Raw
			if flags.Changed("lang") {
				raw.SelectedLanguages = preferences.ParseLanguageList(langs)
				if len(raw.SelectedLanguages) == 0 {
					return errors.New("--lang needs at least one language")
				}
			}
			if flags.Changed("enabled") {
				raw.Enabled = &enabled
			}
			if flags.Changed("show-unknown") {
				raw.ShowUnknown = &showUnknown
			}
			if flags.Changed("keep-subscribed") {
				raw.KeepSubscribed = &keepSubscribed
			}
			if !flags.Changed("lang") && !flags.Changed("enabled") && !flags.Changed("show-unknown") && !flags.Changed("keep-subscribed") {
				return errors.New("nothing to change; pass --lang, --enabled, --show-unknown or --keep-subscribed")
			}

			return ctx.withService(func(svc *api.Service) error {
				resp, err := svc.UpdateSettings(cmd.Context(), raw)
				if err != nil {
					return err
				}
				return printSettings(cmd, resp, jsonOutput)
			})
		},
	}

	cmd.Flags().StringVar(&langs, "lang", "", "Comma-separated languages to keep (codes or names)")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "Enable filtering")
	cmd.Flags().BoolVar(&showUnknown, "show-unknown", true, "Keep titles with an unknown verdict visible")
	cmd.Flags().BoolVar(&keepSubscribed, "keep-subscribed", true, "Always show cards from subscribed channels")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSettingsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget stored settings and return to configured defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				resp, err := svc.ResetSettings(cmd.Context())
				if err != nil {
					return err
				}
				return printSettings(cmd, resp, false)
			})
		},
	}
}

func printSettings(cmd *cobra.Command, resp api.SettingsResponse, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, resp)
	}
	s := resp.Settings
	langs := make([]string, 0, len(s.SelectedLanguages))
	for _, code := range s.SelectedLanguages {
		langs = append(langs, string(code))
	}
	rows := [][]string{
		{"enabled", yesNo(s.Enabled)},
		{"selected_languages", strings.Join(langs, ",")},
		{"show_unknown", yesNo(s.ShowUnknown)},
		{"keep_subscribed", yesNo(s.KeepSubscribed)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value"}, rows, nil, tableStyle{}))
	return nil
}
