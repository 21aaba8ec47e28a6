package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mbver/lrgo/examples/calc"
	"github.com/mbver/lrgo/lr"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Parse a session of statements and print each statement's result",
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

			results, err := calc.Session(src, lr.WithErrorSyncSize(cfg.ErrorSyncSize))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			for i, v := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %d\n", i+1, v)
			}
			return nil
		},
	}
	return cmd
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
