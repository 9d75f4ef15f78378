package logscrub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logscrub/logscrub/internal/rules"
)

func init() {
	rulesCmd := &cobra.Command{Use: "rules", Short: "Inspect sanitization rules"}
	rootCmd.AddCommand(rulesCmd)

	checkCmd := &cobra.Command{
		Use:   "check <rules-file>",
		Short: "Validate a rules file without sanitizing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			set, err := rules.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d rules OK\n", args[0], len(set))
			return nil
		},
	}
	rulesCmd.AddCommand(checkCmd)

	listCmd := &cobra.Command{
		Use:   "list <rules-file>",
		Short: "Print compiled rules in application order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			set, err := rules.Load(args[0])
			if err != nil {
				return err
			}
			for i, r := range set {
				fmt.Printf("%3d  %s\n", i+1, r.Description)
			}
			return nil
		},
	}
	rulesCmd.AddCommand(listCmd)
}
