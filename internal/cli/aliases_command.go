package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases KEY",
		Short: "List every key resolving to the same value as KEY.",
		Long:  `Prints KEY's whole alias group: the canonical name and every alias sharing its value, KEY itself included.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, args)
		},
	}
	return cmd
}

func runAliasesCmd(cmd *cobra.Command, args []string) error {
	m, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	keys, ok := m.Aliases(args[0])
	if !ok {
		return fmt.Errorf("key %q is not registered", args[0])
	}

	slices.Sort(keys)
	for _, k := range keys {
		fmt.Println(ListItemColor(k))
	}
	return nil
}
