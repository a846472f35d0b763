package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
)

// formFlags liga as flags do formulário; números só entram quando informados
type formFlags struct {
	form        yielding.Form
	quantity    float64
	targetYield float64
}

func (f *formFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.form.CropName, "crop", "", "nome da cultura")
	flags.Float64Var(&f.quantity, "quantity", 0, "quantidade colhida")
	flags.Float64Var(&f.targetYield, "target", 0, "meta de produtividade")
	flags.StringVar(&f.form.Unit, "unit", "", "unidade: kg, ton, bushel ou lb (padrão kg)")
	flags.StringVar(&f.form.Season, "season", "", "estação, ex: \"Summer 2023\" (derivada das datas se vazia)")
	flags.StringVar(&f.form.PlantedDate, "planted", "", "data de plantio YYYY-MM-DD")
	flags.StringVar(&f.form.HarvestDate, "harvest", "", "data de colheita YYYY-MM-DD")
	flags.StringVar(&f.form.Notes, "notes", "", "observações")
}

// apply sobrescreve em base apenas os campos cujas flags foram informadas
func (f *formFlags) apply(flags *pflag.FlagSet, base yielding.Form) yielding.Form {
	if flags.Changed("crop") {
		base.CropName = f.form.CropName
	}
	if flags.Changed("quantity") {
		quantity := f.quantity
		base.Quantity = &quantity
	}
	if flags.Changed("target") {
		target := f.targetYield
		base.TargetYield = &target
	}
	if flags.Changed("unit") {
		base.Unit = f.form.Unit
	}
	if flags.Changed("season") {
		base.Season = f.form.Season
	}
	if flags.Changed("planted") {
		base.PlantedDate = f.form.PlantedDate
	}
	if flags.Changed("harvest") {
		base.HarvestDate = f.form.HarvestDate
	}
	if flags.Changed("notes") {
		base.Notes = f.form.Notes
	}
	return base
}

func (rt *runtime) yieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yields",
		Aliases: []string{"crops"},
		Short:   "Gerencia os registros de colheita",
	}

	cmd.AddCommand(
		rt.yieldsListCmd(),
		rt.yieldsGetCmd(),
		rt.yieldsAddCmd(),
		rt.yieldsUpdateCmd(),
		rt.yieldsDeleteCmd(),
	)
	return cmd
}

func (rt *runtime) yieldsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista as culturas com o progresso em relação à meta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			metrics, err := rt.services.Yields.List(cmd.Context())
			if err != nil {
				return err
			}

			renderMetrics(cmd.OutOrStdout(), "Crop Inventory", metrics)
			return nil
		},
	}
}

func (rt *runtime) yieldsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Mostra um registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			metric, err := rt.services.Yields.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderMetrics(cmd.OutOrStdout(), "Crop", []domain.PerformanceMetric{*metric})
			if metric.Notes != "" {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Notes: "+metric.Notes))
			}
			return nil
		},
	}
}

func (rt *runtime) yieldsAddCmd() *cobra.Command {
	flags := &formFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cadastra um registro de colheita",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			form := flags.apply(cmd.Flags(), yielding.Form{})
			metric, err := rt.services.Yields.Create(cmd.Context(), form)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Registro criado: "+metric.ID))
			renderMetrics(cmd.OutOrStdout(), "", []domain.PerformanceMetric{*metric})
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

// update parte do registro atual, como o formulário de edição pré-preenchido
func (rt *runtime) yieldsUpdateCmd() *cobra.Command {
	flags := &formFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Atualiza os campos informados de um registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			current, err := rt.services.Yields.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			form := flags.apply(cmd.Flags(), yielding.FormFromRecord(current.YieldRecord))
			metric, err := rt.services.Yields.Update(cmd.Context(), args[0], form)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Registro atualizado: "+args[0]))
			renderMetrics(cmd.OutOrStdout(), "", []domain.PerformanceMetric{*metric})
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

func (rt *runtime) yieldsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove um registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			if err := rt.services.Yields.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Registro removido: "+args[0]))
			return nil
		},
	}
}
