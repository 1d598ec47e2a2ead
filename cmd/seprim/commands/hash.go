package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seprim/internal/app"
	"seprim/internal/domain"
)

const readChunk = 4096

// hash [files...]: digest files or stdin, optionally resuming a saved state.
func hashCmd(c *cli) *cobra.Command {
	var (
		length   int
		state    string
		final    bool
		encoding string
	)
	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "Hash files or stdin, resumable across invocations with --state",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := c.wire.Engine
			if !cmd.Flags().Changed("length") {
				length = c.wire.Config.Hash.DigestLength
			}
			alg := domain.HashAlgorithm(length)

			var st domain.HashState
			if state != "" {
				saved, ok, err := c.wire.HashStates.LoadHashState(state, c.passphrase)
				if err != nil {
					return err
				}
				if ok {
					st = saved
					if !cmd.Flags().Changed("length") {
						alg = st.Algorithm
					}
				}
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			for _, name := range inputs {
				if err := absorbFile(e, &st, alg, name, cmd.InOrStdin()); err != nil {
					return err
				}
			}
			// An empty message still selects the algorithm.
			if st.Counted == 0 {
				if err := e.Absorb(&st, alg, nil); err != nil {
					return err
				}
			}

			if state != "" && !final {
				if err := c.wire.HashStates.SaveHashState(state, st, c.passphrase); err != nil {
					return err
				}
				printf(cmd, "%s counted=%d remainder=%d\n", st.Algorithm, st.Counted, st.RemainderLen)
				return nil
			}

			digest := make([]byte, st.Algorithm.DigestSize())
			if err := e.Finalize(&st, digest); err != nil {
				return err
			}
			out, err := encodeDigest(st.Algorithm, digest, encoding)
			if err != nil {
				return err
			}
			if state != "" {
				if err := c.wire.HashStates.DeleteHashState(state); err != nil {
					return err
				}
			}
			printf(cmd, "%s\n", out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "digest length: 20, 28, 32, 48 or 64 (default from config)")
	cmd.Flags().StringVar(&state, "state", "", "name of a saved hash state to resume and save")
	cmd.Flags().BoolVar(&final, "final", false, "with --state, finalize and discard the state")
	cmd.Flags().StringVar(&encoding, "encoding", "hex", "hex, base64, multihash or cid")
	return cmd
}

func absorbFile(e *app.Engine, st *domain.HashState, alg domain.HashAlgorithm, name string, stdin io.Reader) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if aerr := e.Absorb(st, alg, buf[:n]); aerr != nil {
				return aerr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
}
