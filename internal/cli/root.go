// Package cli implements the aliasmap command tree: queries against a YAML
// alias registry from the command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/homier/aliasmap"
	"github.com/homier/aliasmap/internal/registry"
)

var rootCmd *cobra.Command

func NewRootCommand(version string) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "aliasmap",
		Short: "aliasmap answers queries against an alias registry.",
		Long: `aliasmap reads a YAML registry of named values and the aliases that
resolve to them, and answers queries against it: resolving a key to its
value, listing the keys that share a value, and validating the registry.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringP("file", "f", "aliases.yaml", "Path to the registry file.")

	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewAliasesCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// loadRegistry loads the registry named by the persistent --file flag.
func loadRegistry(cmd *cobra.Command) (*aliasmap.Map[string, string], error) {
	path, _ := cmd.Flags().GetString("file")
	return registry.Load(path)
}
