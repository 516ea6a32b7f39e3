package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the registry file.",
		Long:  `Parses the registry strictly, rejecting unknown fields, duplicate names, reused aliases and self-aliases, and prints a summary on success.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, args)
		},
	}
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	m, err := loadRegistry(cmd)
	if err != nil {
		fmt.Println(ErrorColor("The registry is invalid."))
		return err
	}

	fmt.Println(SuccessColor("The registry is valid."))
	if m.IsEmpty() {
		fmt.Println(WarningColor("Note: the registry declares no entries."))
		return nil
	}

	stats := m.Stats()
	fmt.Println(DetailColor(fmt.Sprintf("%d values, %d keys, %d shared by more than one key",
		stats.Values, stats.Keys, stats.Shared)))
	return nil
}
