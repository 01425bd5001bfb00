package handlers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hvac_fixtures/internal/repository"
	"hvac_fixtures/internal/service"
)

func (h *Handler) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the most recent generation run",
		Args:  cobra.NoArgs,
		RunE:  h.status,
	}
}

func (h *Handler) status(cmd *cobra.Command, _ []string) error {
	run, err := h.services.LatestRun(cmd.Context())
	switch {
	case errors.Is(err, service.ErrNoRuns):
		// Baseline when nothing was generated yet.
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	case errors.Is(err, repository.ErrHistoryDisabled):
		return errHistoryRequired
	case err != nil:
		h.log.Errorw("status_failed", "err", err)
		return fmt.Errorf("load latest run: %w", err)
	}

	printRun(cmd.OutOrStdout(), run)
	return nil
}
