package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"seprim/internal/entropy"
)

// random [N]: N random bytes, 8 by default.
func randomCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "random [n]",
		Short: "Print random bytes from the configured entropy source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := entropy.NumberSize
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("n: %w", err)
				}
				n = v
			}
			if n == entropy.NumberSize {
				num, err := c.wire.Engine.RandomNumber()
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", upperHex(num[:]))
				return nil
			}
			if n <= 0 {
				return fmt.Errorf("n must be positive, got %d", n)
			}
			out := make([]byte, n)
			if err := c.wire.Engine.RandomBytes(out); err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(out))
			return nil
		},
	}
}
