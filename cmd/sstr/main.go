package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wwnames/fnvbrute/internal/logging"
	"github.com/wwnames/fnvbrute/internal/sstr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var limited bool
	var chunkSize int
	var logLevel string

	cmd := &cobra.Command{
		Use:   "sstr [flags] <file>...",
		Short: "Print sized strings found in binary files",
		Long: `Finds strings stored as (u32 size)(string) or (u32 size)(u32 id)(string),
little endian, with 3 < size < 255. Unlike a generic strings tool the size
bytes are not glued onto the text.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(cmd.ErrOrStderr(), logLevel, "")
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer func() { _ = out.Flush() }()

			scanner := &sstr.Scanner{Limited: limited, ChunkSize: chunkSize}
			for _, name := range args {
				if err := scanFile(out, scanner, name, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&limited, "limited", "l", false, "Only accept characters used in engine names")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", sstr.DefaultChunkSize, "Bytes read per chunk")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Diagnostics level: debug|info|warn|error")

	return cmd
}

// scanFile prints the strings of one file. A missing file is skipped.
func scanFile(out *bufio.Writer, scanner *sstr.Scanner, name string, logger *slog.Logger) error {
	file, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("file not found", slog.String("path", name))
		fmt.Fprintf(out, "file not found (%s)\n", name)
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	fmt.Fprintf(out, "reading %s...\n", name)
	count := 0
	err = scanner.Scan(bufio.NewReader(file), func(s string) {
		count++
		_, _ = out.WriteString(s)
		_ = out.WriteByte('\n')
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", name, err)
	}
	logger.Debug("file scanned", slog.String("path", name), slog.Int("strings", count))
	return nil
}
