package commands

import "github.com/spf13/cobra"

// mul A B: unsigned product of two equal-length operands.
func mulCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := maxHexLen(args...)
			a, err := parseFixed("a", args[0], n)
			if err != nil {
				return err
			}
			b, err := parseFixed("b", args[1], n)
			if err != nil {
				return err
			}
			product := make([]byte, 2*n)
			if err := c.wire.Engine.Multiply(product, a, b); err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(product))
			return nil
		},
	}
}

// modmul A B M: (A*B) mod M.
func modmulCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "modmul <a> <b> <modulus>",
		Short: "Modular multiplication",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseHex("modulus", args[2])
			if err != nil {
				return err
			}
			a, err := parseFixed("a", args[0], len(m))
			if err != nil {
				return err
			}
			b, err := parseFixed("b", args[1], len(m))
			if err != nil {
				return err
			}
			if err := c.wire.Engine.ModMultiply(a, b, m); err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(a))
			return nil
		},
	}
}

// modexp BASE EXP MOD: BASE^EXP mod MOD.
func modexpCmd(c *cli) *cobra.Command {
	var secure bool
	cmd := &cobra.Command{
		Use:   "modexp <base> <exponent> <modulus>",
		Short: "Modular exponentiation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseHex("modulus", args[2])
			if err != nil {
				return err
			}
			base, err := parseFixed("base", args[0], len(m))
			if err != nil {
				return err
			}
			exp, err := parseHex("exponent", args[1])
			if err != nil {
				return err
			}
			result := make([]byte, len(m))
			if err := c.wire.Engine.ModExp(exp, m, base, result, secure); err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(result))
			return nil
		},
	}
	cmd.Flags().BoolVar(&secure, "secure", false, "use the constant-time path (required for secret exponents)")
	return cmd
}

// compare A B: ordering of two integers padded to a common length.
func compareCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := maxHexLen(args...)
			a, err := parseFixed("a", args[0], n)
			if err != nil {
				return err
			}
			b, err := parseFixed("b", args[1], n)
			if err != nil {
				return err
			}
			ord, o, err := c.wire.Engine.Compare(a, b, n)
			if err != nil {
				return err
			}
			printf(cmd, "%s carry=%t zero=%t ccr=%02X\n", ord, o.Carry, o.Zero, o.CCR())
			return nil
		},
	}
}

// maxHexLen returns the byte length of the longest hex operand.
func maxHexLen(args ...string) int {
	n := 0
	for _, a := range args {
		if b, err := parseHex("operand", a); err == nil && len(b) > n {
			n = len(b)
		}
	}
	if n == 0 {
		return 1
	}
	return n
}
