package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

func (rt *runtime) reportCmd() *cobra.Command {
	var format, dir string

	cmd := &cobra.Command{
		Use:       "report <crops|history|analytics>",
		Short:     "Exporta um relatório em PDF ou planilha",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ReportCrops), string(domain.ReportHistory), string(domain.ReportAnalytics)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseReportKind(args[0])
			if err != nil {
				return err
			}
			reportFormat, err := domain.ParseReportFormat(format)
			if err != nil {
				return err
			}

			if err := rt.requireSession(); err != nil {
				return err
			}

			result, err := rt.services.Reports.Export(cmd.Context(), kind, reportFormat, domain.TriggerManual)
			if err != nil {
				return err
			}

			path := filepath.Join(dir, result.Export.FileName)
			if err := os.WriteFile(path, result.Content, 0o644); err != nil {
				return errors.Wrapf(err, "erro ao gravar %s", path)
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Relatório salvo em %s (%d bytes)", path, result.Export.SizeBytes)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "formato: pdf ou xlsx")
	cmd.Flags().StringVar(&dir, "dir", ".", "diretório de destino")
	return cmd
}
