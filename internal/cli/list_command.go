package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every alias group in the registry.",
		Long:  `Displays the registry as a table, one row per stored value with all of its keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args)
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	m, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	if m.IsEmpty() {
		fmt.Println(InfoColor("The registry is empty."))
		return nil
	}

	fmt.Println(HeaderColor("Registered values:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Keys", "Value", "Refs"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	// One row per alias group, keyed by its lexicographically first member
	// so the output is stable across runs.
	seen := make(map[string]struct{})
	for _, key := range slices.Sorted(m.Keys()) {
		if _, ok := seen[key]; ok {
			continue
		}

		group, _ := m.Aliases(key)
		slices.Sort(group)
		for _, k := range group {
			seen[k] = struct{}{}
		}

		value, _ := m.Get(key)
		table.Append([]string{strings.Join(group, ", "), value, strconv.Itoa(len(group))})
	}
	table.Render()
	return nil
}
