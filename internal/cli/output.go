package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeSchedule prints a generated schedule as styled tables or JSON.
func writeSchedule(cmd *cobra.Command, resp *app.PlanResponse, asJSON bool) error {
	payload := contract.FromPlanResponse(resp, time.Now())
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), payload)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(payload))
	return nil
}

// generationFailed prints stall details before the error is returned to
// the caller.
func generationFailed(cmd *cobra.Command, err error) error {
	var stall *scheduler.StallError
	if errors.As(err, &stall) {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(contract.NewErrorResponse(err)))
	}
	return err
}
