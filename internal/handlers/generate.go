package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hvac_fixtures/internal/config"
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/parser"
	"hvac_fixtures/internal/service"
)

func (h *Handler) generateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one caseNN directory of CSV fixtures per input case",
		Example: "  hvacfix generate --check < units.txt\n" +
			"  hvacfix generate -c -r -o fixtures -i units.txt",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.generate(cmd, input)
		},
	}

	f := cmd.Flags()
	f.BoolP("check", "c", false, "validate every unit and refuse inconsistent cases")
	f.BoolP("reference", "r", false, "also write reference.xlsx into every case directory")
	f.Bool("continue-on-error", false, "skip a failed case instead of stopping")
	f.StringP("output", "o", ".", "directory receiving the caseNN directories")
	f.StringVarP(&input, "input", "i", "", "read the description from a file instead of stdin")
	h.bind(f, map[string]string{
		config.KeyCheck:           "check",
		config.KeyReference:       "reference",
		config.KeyContinueOnError: "continue-on-error",
		config.KeyOutputDir:       "output",
	})
	return cmd
}

func (h *Handler) generate(cmd *cobra.Command, input string) error {
	cases, err := readCases(cmd, input)
	if err != nil {
		return err
	}

	opts := service.GenerateOptions{
		Check:           h.cfg.Check,
		Reference:       h.cfg.Reference,
		ContinueOnError: h.cfg.ContinueOnError,
	}
	report, err := h.services.Generate(cmd.Context(), cases, opts)
	printRunReport(cmd.OutOrStdout(), report)
	if err != nil {
		h.log.Errorw("generation failed", "run_id", report.RunID, "written", report.Written(), "err", err)
		return err
	}
	return nil
}

// readCases parses the description from path, or from the command's stdin
// when path is empty. The whole input is parsed before anything is written.
func readCases(cmd *cobra.Command, path string) ([]models.Case, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	cases, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return cases, nil
}
