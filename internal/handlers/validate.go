package handlers

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) validateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every unit of the description without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.validate(cmd, input)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read the description from a file instead of stdin")
	return cmd
}

func (h *Handler) validate(cmd *cobra.Command, input string) error {
	cases, err := readCases(cmd, input)
	if err != nil {
		return err
	}

	verdicts := h.services.ValidateCases(cases)
	failed := printVerdicts(cmd.OutOrStdout(), verdicts)
	h.log.Infow("validation finished", "cases", len(cases), "units", len(verdicts), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d units inconsistent", failed, len(verdicts))
	}
	return nil
}
