package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/significado/internal/names"
	"github.com/mistakeknot/significado/internal/render"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	warnColor  = color.New(color.FgYellow)
	okColor    = color.New(color.FgGreen)
)

// printReport colors the title line and leaves the body plain.
func printReport(w io.Writer, report string) {
	title, body, _ := strings.Cut(report, "\n")
	titleColor.Fprintln(w, title)
	fmt.Fprintln(w, body)
}

func reportCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Print the detailed report for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if asYAML {
				a, err := names.NewGenerator().Analyze(name)
				if err != nil {
					return err
				}
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(a)
			}
			report, fallback, err := names.Describe(name)
			if err != nil {
				return err
			}
			if fallback {
				warnColor.Fprintln(cmd.ErrOrStderr(), "detailed report unavailable, showing summary")
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the structured analysis as YAML")
	return cmd
}

func fallbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fallback <name>",
		Short: "Print the short summary report for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := names.Fallback(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Save the report as significado_<name>.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			report, _, err := names.Describe(name)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path := filepath.Join(dir, render.Filename(name))
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create image: %w", err)
			}
			if err := render.Default.Render(f, "Significado de "+name, report); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			okColor.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "directory to write the image to")
	return cmd
}
