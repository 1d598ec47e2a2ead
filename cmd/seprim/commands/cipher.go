package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seprim/internal/domain"
)

func parseAlgorithm(s string) (domain.CipherAlgorithm, error) {
	switch strings.ToLower(s) {
	case "des":
		return domain.DES, nil
	case "3des", "tdes", "des3":
		return domain.TripleDES, nil
	case "seed":
		return domain.SEED, nil
	case "aes", "aes128", "aes-128":
		return domain.AES, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q: want des, 3des, seed or aes", s)
}

func parseMode(s string) (domain.CipherMode, error) {
	switch strings.ToLower(s) {
	case "ecb":
		return domain.ECB, nil
	case "cbc":
		return domain.CBC, nil
	}
	return 0, fmt.Errorf("unknown mode %q: want ecb or cbc", s)
}

// encrypt|decrypt DATA: block cipher over hex data.
func cipherCmd(c *cli, encrypt bool) *cobra.Command {
	var alg, mode, key, iv string
	use, short := "decrypt", "Block decipher hex data"
	if encrypt {
		use, short = "encrypt", "Block encipher hex data"
	}
	cmd := &cobra.Command{
		Use:   use + " <data>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAlgorithm(alg)
			if err != nil {
				return err
			}
			m, err := parseMode(mode)
			if err != nil {
				return err
			}
			k, err := parseHex("key", key)
			if err != nil {
				return err
			}
			var ivb []byte
			if m == domain.CBC {
				if iv == "" {
					ivb = make([]byte, a.BlockSize())
				} else if ivb, err = parseHex("iv", iv); err != nil {
					return err
				}
			}
			data, err := parseHex("data", args[0])
			if err != nil {
				return err
			}

			out := make([]byte, len(data))
			if encrypt {
				err = c.wire.Engine.Encrypt(a, m, k, ivb, data, out)
			} else {
				err = c.wire.Engine.Decrypt(a, m, k, ivb, data, out)
			}
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "aes", "des, 3des, seed or aes")
	cmd.Flags().StringVar(&mode, "mode", "cbc", "ecb or cbc")
	cmd.Flags().StringVar(&key, "key", "", "key (hex)")
	cmd.Flags().StringVar(&iv, "iv", "", "CBC IV (hex, default all zero)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// mac DATA: 8-byte Triple DES CBC signature.
func macCmd(c *cli) *cobra.Command {
	var key, iv string
	cmd := &cobra.Command{
		Use:   "mac <data>",
		Short: "Triple DES CBC signature over hex data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseHex("key", key)
			if err != nil {
				return err
			}
			ivb := make([]byte, 8)
			if iv != "" {
				if ivb, err = parseHex("iv", iv); err != nil {
					return err
				}
			}
			data, err := parseHex("data", args[0])
			if err != nil {
				return err
			}
			sig := make([]byte, 8)
			if err := c.wire.Engine.Signature(sig, k, ivb, data); err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(sig))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "two 8-byte DES keys (hex)")
	cmd.Flags().StringVar(&iv, "iv", "", "IV (hex, default all zero)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
