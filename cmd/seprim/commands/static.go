package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"seprim/internal/store"
)

const staticFilename = "static.bin"

// static read|write: the file-backed persistent memory area.
func staticCmd(c *cli) *cobra.Command {
	var size int
	open := func() (*store.Static, error) {
		return store.OpenStatic(filepath.Join(c.wire.Config.Home, staticFilename), size)
	}

	cmd := &cobra.Command{
		Use:   "static",
		Short: "Read and write the persistent static memory area",
	}
	cmd.PersistentFlags().IntVar(&size, "size", 4096, "size of the area in bytes")

	read := &cobra.Command{
		Use:   "read <offset> <length>",
		Short: "Print bytes of the area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			off, n, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			b, err := s.ReadAt(off, n)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", upperHex(b))
			return nil
		},
	}

	var atomic bool
	write := &cobra.Command{
		Use:   "write <offset> <data>",
		Short: "Copy hex data into the area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			off, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("offset: %w", err)
			}
			data, err := parseHex("data", args[1])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			return s.CopyIn(off, data, len(data), atomic)
		},
	}
	write.Flags().BoolVar(&atomic, "atomic", true, "all-or-nothing write; false patches in place")

	cmd.AddCommand(read, write)
	return cmd
}

func parseRange(offset, length string) (int, int, error) {
	off, err := strconv.Atoi(offset)
	if err != nil {
		return 0, 0, fmt.Errorf("offset: %w", err)
	}
	n, err := strconv.Atoi(length)
	if err != nil {
		return 0, 0, fmt.Errorf("length: %w", err)
	}
	return off, n, nil
}
