package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput loads the raw point data for a command. Exactly one source must
// be given: a positional file argument (or "-" for stdin), or --from-url.
func (c *CLI) readInput(cmd *cobra.Command, args []string, fromURL string, noCache bool) ([]byte, error) {
	switch {
	case fromURL != "" && len(args) > 0:
		return nil, fmt.Errorf("cannot combine a file argument with --from-url")
	case fromURL != "":
		fetcher := c.newFetcher(cmd, noCache)
		data, err := fetcher.Fetch(cmd.Context(), fromURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", fromURL, err)
		}
		return data, nil
	case len(args) == 0:
		return nil, fmt.Errorf("point file required (use - for stdin, or --from-url)")
	case args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
