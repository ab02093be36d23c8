package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/significado/internal/names"
)

type batchFailure struct {
	Name  string `yaml:"name"`
	Error string `yaml:"error"`
}

func batchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze one name per line and print YAML documents",
		Long:  "Analyze one name per line of <file> (\"-\" reads stdin). Output keeps input order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open names: %w", err)
				}
				defer f.Close()
				in = f
			}
			list, err := readNames(in)
			if err != nil {
				return err
			}
			return runBatch(cmd.OutOrStdout(), names.NewGenerator(), list, workers)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "names analyzed in parallel")
	return cmd
}

func readNames(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			out = append(out, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return out, nil
}

func runBatch(w io.Writer, gen *names.Generator, list []string, workers int) error {
	if workers < 1 {
		workers = 1
	}
	results := make([]any, len(list))
	p := pool.New().WithMaxGoroutines(workers)
	for idx, name := range list {
		p.Go(func() {
			a, err := gen.Analyze(name)
			if err != nil {
				results[idx] = batchFailure{Name: name, Error: err.Error()}
				return
			}
			results[idx] = a
		})
	}
	p.Wait()

	enc := yaml.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	}
	return enc.Close()
}
