package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(factory ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every billboard in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := factory(cmd.Context(), 0)
			if err != nil {
				return err
			}
			items := svc.List(cmd.Context())
			rows := make([][]string, 0, len(items))
			for _, b := range items {
				rows = append(rows, []string{
					b.Code,
					strconv.Itoa(b.ID),
					b.Region,
					b.Size,
					string(b.Type),
					string(b.TrafficLevel),
					strconv.FormatInt(b.MonthlyRate, 10),
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"code", "id", "region", "size", "type", "traffic", "monthly rate"}, rows)
		},
	}
}
