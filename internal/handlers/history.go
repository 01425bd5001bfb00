package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hvac_fixtures/internal/repository"
	"hvac_fixtures/internal/service"
)

const (
	errFromInvalid = "invalid --from time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid --to time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether s is a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func (h *Handler) historyCmd() *cobra.Command {
	var (
		from, to, typ string
		asJSON        bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation events",
		Long: "Lists generation events from the history database. --from and --to accept RFC3339, " +
			"'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only --to covers the whole day.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return h.history(cmd, from, to, typ, asJSON)
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "start of range")
	f.StringVar(&to, "to", "", "end of range, inclusive")
	f.StringVar(&typ, "type", "", "event type: RUN_START, CASE_WRITTEN, CASE_REJECTED, CASE_FAILED, RUN_FINISH")
	f.BoolVar(&asJSON, "json", false, "print events as JSON")
	return cmd
}

func (h *Handler) history(cmd *cobra.Command, fromStr, toStr, typ string, asJSON bool) error {
	var (
		from, to time.Time
		err      error
	)
	if fromStr != "" {
		if from, err = parseQueryTime(fromStr); err != nil {
			return errors.New(errFromInvalid)
		}
	}
	if toStr != "" {
		if to, err = parseQueryTime(toStr); err != nil {
			return errors.New(errToInvalid)
		}
		if isDateOnly(toStr) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	events, err := h.services.List(cmd.Context(), service.LogFilter{From: from, To: to, Type: typ})
	if err != nil {
		if errors.Is(err, repository.ErrHistoryDisabled) {
			return errHistoryRequired
		}
		h.log.Errorw("history_list_failed", "err", err, "from", from, "to", to, "type", typ)
		return fmt.Errorf("load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"count": len(events), "events": events})
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s  %-13s  %s  %s\n", e.OccurredAt.UTC().Format(layoutDateTime), e.Type, shortID(e.RunID), e.Description)
	}
	fmt.Fprintf(out, "%d events\n", len(events))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
