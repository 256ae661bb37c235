package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/docbatch/internal/format"
)

// completeFormats completes file type extensions with their descriptions.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range format.Formats {
		if strings.HasPrefix(f.Dir(), strings.TrimPrefix(toComplete, ".")) {
			matches = append(matches, f.Dir()+"\t"+f.Description)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
