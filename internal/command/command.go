package command

import (
	commandHandler "shiftlist/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewExportHandler)

type Command struct {
	exportCommandHandler *commandHandler.ExportHandler
}

// NewCommand .
func NewCommand(
	exportCommandHandler *commandHandler.ExportHandler,
) *Command {
	return &Command{
		exportCommandHandler: exportCommandHandler,
	}
}

// Register 掛上子命令；newCmd 延後到執行時才建立，避免 root 啟動 server 時也連線
func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var (
		year, month int
		period      string
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "generate the roster workbooks of one month into the data dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			if period != "" {
				return command.exportCommandHandler.ExportPeriod(cmd, period)
			}
			return command.exportCommandHandler.Export(cmd, year, month)
		},
	}
	exportCmd.Flags().IntVar(&year, "year", 0, "year, defaults to the current year")
	exportCmd.Flags().IntVar(&month, "month", 0, "month 1-12, defaults to the current month")
	exportCmd.Flags().StringVar(&period, "period", "", "period key such as 2024-2, overrides --year/--month")
	exportCmd.MarkFlagsMutuallyExclusive("period", "year")
	exportCmd.MarkFlagsMutuallyExclusive("period", "month")

	rootCmd.AddCommand(exportCmd)
}
