package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *App) *cobra.Command {
	var asJSON bool
	prefs := newPreferenceFlags()

	cmd := &cobra.Command{
		Use:   "generate [file|-]",
		Short: "Generate a schedule from a JSON class list",
		Long: "Generate a schedule from a {classes, preferences} JSON request read\n" +
			"from a file, or from stdin when the argument is \"-\" or omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening request: %w", err)
				}
				defer f.Close()
				in = f
			}

			body, err := readScheduleRequest(in)
			if err != nil {
				return err
			}
			req, err := body.ToDomain(a.Defaults)
			if err != nil {
				return err
			}
			if req.Preferences, err = prefs.apply(req.Preferences); err != nil {
				return err
			}

			resp, err := a.Plans.Schedule(cmd.Context(), req)
			if err != nil {
				return generationFailed(cmd, err)
			}
			return writeSchedule(cmd, resp, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedule as JSON")
	cmd.Flags().AddFlagSet(prefs.FlagSet())

	return cmd
}

func readScheduleRequest(r io.Reader) (contract.ScheduleRequest, error) {
	var body contract.ScheduleRequest
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return body, fmt.Errorf("%w: %v", contract.ErrMalformedRequest, err)
	}
	return body, nil
}
