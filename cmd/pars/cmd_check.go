package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pars/arith"
	"github.com/dhamidi/pars/parse"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files with the demo grammar and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read %s: %w", filename, err)
				}

				err = arith.Check(string(data))
				if err == nil {
					fmt.Printf("%s: ok\n", filename)
					continue
				}
				failed = true

				var parseErr *parse.Error
				if errors.As(err, &parseErr) {
					for _, message := range parseErr.Messages {
						fmt.Printf("%s:%s: %s\n", filename, message.Location, message.Text)
					}
					continue
				}
				fmt.Printf("%s: %v\n", filename, err)
			}
			if failed {
				return fmt.Errorf("some files did not parse")
			}
			return nil
		},
	}
}
