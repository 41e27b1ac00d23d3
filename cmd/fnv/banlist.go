package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wwnames/fnvbrute/internal/banlist"
)

func newBanListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banlist [FILE]",
		Short: "Check a ban list and print what it bans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := banlist.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			table, stats, err := banlist.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d lines, %d rules, %d pairs\n", path, stats.Lines, stats.Rules, stats.Pairs)
			for _, pos := range []banlist.Position{banlist.Start, banlist.Inner} {
				fmt.Fprintf(out, "- %s: %d banned\n", pos, table.Banned(pos))
			}
			return nil
		},
	}
	return cmd
}
