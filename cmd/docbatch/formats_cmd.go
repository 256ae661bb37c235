package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/docbatch/internal/batch"
	"github.com/raphi011/docbatch/internal/format"
	"github.com/raphi011/docbatch/internal/output"
	"github.com/raphi011/docbatch/internal/ui/static"
	"github.com/raphi011/docbatch/internal/ui/styles"
)

func newFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "formats [QUERY]",
		Short:   "List supported file types",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List supported file types in menu order.

With a query, only matching types are shown, best match first. The query
is fuzzy-matched against the extension and the description.`,
		Example: `  docbatch formats        # All file types
  docbatch formats sheet  # Types matching "sheet"`,
		ValidArgsFunction: completeFormats,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			var query string
			if len(args) > 0 {
				query = args[0]
			}

			found := format.Search(query)
			if len(found) == 0 {
				return &batch.InvalidSelectionError{Input: query, Max: len(format.Formats), Query: true}
			}

			rows := make([][]string, 0, len(found))
			for _, f := range found {
				rows = append(rows, []string{menuNumber(f), f.Dir(), f.Description, f.Kind.String()})
			}
			out.Print(static.RenderTable([]string{"#", "EXT", "TYPE", "KIND"}, rows, &styles.AccentStyle))
			return nil
		},
	}

	return cmd
}

// menuNumber returns the 1-based menu position of f.
func menuNumber(f format.Format) string {
	for i, candidate := range format.Formats {
		if candidate.Ext == f.Ext {
			return strconv.Itoa(i + 1)
		}
	}
	return "-"
}
