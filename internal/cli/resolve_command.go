package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve KEY",
		Short: "Resolve a key to its stored value.",
		Long:  `Looks KEY up in the registry, whether it is a canonical name or an alias, and prints the value it resolves to.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args)
		},
	}
	return cmd
}

func runResolveCmd(cmd *cobra.Command, args []string) error {
	m, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	value, ok := m.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not registered", args[0])
	}

	fmt.Println(value)
	return nil
}
