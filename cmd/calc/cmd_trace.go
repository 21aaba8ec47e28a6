package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mbver/lrgo/examples/calc"
	"github.com/mbver/lrgo/lr"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Parse a session with shift/reduce/stack-dump diagnostics, stamped with a session id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}

			src, err := readSource(args)
			if err != nil {
				return err
			}

			sessionID := uuid.New()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "session %s\n", sessionID)

			results, err := calc.Trace(src, &sessionTraceWriter{id: sessionID, w: out}, lr.WithErrorSyncSize(cfg.ErrorSyncSize))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			for i, v := range results {
				fmt.Fprintf(out, "%d: %d\n", i+1, v)
			}
			return nil
		},
	}
	return cmd
}

// sessionTraceWriter prefixes every line the driver's debug trace writes
// with the run's session id, so interleaved runs stay distinguishable in a
// shared log stream.
type sessionTraceWriter struct {
	id      uuid.UUID
	w       io.Writer
	midLine bool
}

func (s *sessionTraceWriter) Write(p []byte) (int, error) {
	prefix := fmt.Sprintf("[%s] ", s.id)
	out := make([]byte, 0, len(p))
	for _, b := range p {
		if !s.midLine {
			out = append(out, prefix...)
		}
		out = append(out, b)
		s.midLine = b != '\n'
	}
	if _, err := s.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
