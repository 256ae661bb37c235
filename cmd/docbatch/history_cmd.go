package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/docbatch/internal/history"
	"github.com/raphi011/docbatch/internal/log"
	"github.com/raphi011/docbatch/internal/output"
	"github.com/raphi011/docbatch/internal/ui/static"
	"github.com/raphi011/docbatch/internal/ui/styles"
)

func newHistoryCmd(path string) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recently used templates",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show recently used templates, most recent first.

The most recent template is shown as the hint of the next session.
History is stored in $XDG_STATE_HOME/docbatch/history.json
(default ~/.local/state/docbatch/history.json).`,
		Example: `  docbatch history          # List recent templates
  docbatch history --clear  # Forget all templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if path == "" {
				return fmt.Errorf("history location unknown: no home directory")
			}

			if clearAll {
				if err := history.Clear(path); err != nil {
					return fmt.Errorf("clear history: %w", err)
				}
				l.Println("History cleared")
				return nil
			}

			h, err := history.Load(path)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if len(h.Entries) == 0 {
				l.Println("No templates recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(h.Entries))
			for _, e := range h.Entries {
				rows = append(rows, []string{
					e.Template,
					e.Ext,
					strconv.Itoa(e.Count),
					strconv.Itoa(e.Uses),
					e.LastUsed.Local().Format("2006-01-02 15:04"),
				})
			}
			out.Print(static.RenderTable([]string{"TEMPLATE", "EXT", "COUNT", "USES", "LAST USED"}, rows, &styles.PrimaryStyle))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove all recorded templates")

	return cmd
}
