package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackscout/pkg/detect"
)

// newEcosystemsCmd creates the ecosystems command, which lists the package
// ecosystems the tool can analyze and the manifest each one is parsed from.
func newEcosystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecosystems",
		Short: "List supported package ecosystems",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := detect.NewRegistry(adapters()...)
			for _, eco := range registry.Ecosystems() {
				adapter, err := registry.Resolve(eco)
				if err != nil {
					return err
				}
				patterns := adapter.FilePatterns()
				fmt.Printf("%-12s sources: %v\n", eco, patterns.SourceExts)
			}
			return nil
		},
	}
}
