package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"terminal-quiz/internal/cli"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run owns in for the whole session and closes it on every path. Failures are
// reported on errOut by cli.Run's logger.
func run(in io.ReadCloser, out, errOut io.Writer) int {
	defer in.Close()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if err := cli.Run(context.Background(), in, out, cli.Config{Logger: &logger}); err != nil {
		return 1
	}
	return 0
}
