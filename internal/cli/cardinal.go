package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/expensedesk/tafqeet"
)

func newCardinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cardinal <number>",
		Short: "Write a whole number in Arabic words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], tafqeet.ErrInvalidAmount)
			}
			words, err := tafqeet.Cardinal(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), words)
			return err
		},
	}
}
