package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tubelang/internal/api"
)

func newChannelsCommand(ctx *commandContext) *cobra.Command {
	channelsCmd := &cobra.Command{
		Use:   "channels",
		Short: "Manage the subscribed channel set",
	}

	channelsCmd.AddCommand(newChannelsImportCommand(ctx))
	channelsCmd.AddCommand(newChannelsListCommand(ctx))
	channelsCmd.AddCommand(newChannelsClearCommand(ctx))

	return channelsCmd
}

func newChannelsImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html|->",
		Short: "Import channels from a saved subscriptions page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read subscriptions page: %w", err)
			}

			return ctx.withService(func(svc *api.Service) error {
				resp, err := svc.ImportChannels(cmd.Context(), string(data))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new channels (%d total)\n", resp.Added, resp.Count)
				return nil
			})
		},
	}
}

func newChannelsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribed channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				resp, err := svc.Channels(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				if resp.Count == 0 {
					fmt.Fprintln(out, "No subscribed channels stored")
					return nil
				}
				rows := make([][]string, 0, len(resp.Channels))
				for i, href := range resp.Channels {
					rows = append(rows, []string{fmt.Sprint(i + 1), href})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Channel"}, rows, []columnAlignment{alignRight, alignLeft}, tableStyle{}))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newChannelsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every stored channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				if err := svc.ClearChannels(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared subscribed channels")
				return nil
			})
		},
	}
}
