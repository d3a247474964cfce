package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pars/arith"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression with the demo grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			value, err := arith.Eval(input)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			fmt.Println(value)
			return nil
		},
	}
}
