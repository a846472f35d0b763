package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

func (rt *runtime) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumo, desempenho por cultura e projeção da próxima estação",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			view, err := rt.services.Views.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderSummary(out, view.Summary)
			renderMetrics(out, "Crop Performance", view.Metrics)

			dist := newTable("Harvest Distribution", "Crop", "Quantity", "Share")
			for _, slice := range view.Distribution {
				dist.add(slice.Name, number(slice.Value), fmt.Sprintf("%.2f%%", slice.Percent))
			}
			dist.render(out)

			renderEfficiency(out, view.Efficiency)

			if view.Forecast != nil {
				forecast := newTable("Forecast "+view.Forecast.Season, "Crop", "Forecast")
				crops := make([]string, 0, len(view.Forecast.Crops))
				for crop := range view.Forecast.Crops {
					crops = append(crops, crop)
				}
				sort.Strings(crops)
				for _, crop := range crops {
					forecast.add(crop, number(view.Forecast.Crops[crop]))
				}
				forecast.render(out)
			}
			return nil
		},
	}
}

func (rt *runtime) analyticsCmd() *cobra.Command {
	var (
		crops   []string
		seasons []string
		chart   string
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Métricas de desempenho e comparação entre culturas/estações",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			selection := domain.ComparisonSelection{Crops: crops, Seasons: seasons}
			view, err := rt.services.Views.Analytics(cmd.Context(), domain.ParseChartType(chart), selection)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderMetrics(out, fmt.Sprintf("Performance (%s chart)", view.ChartType), view.Metrics)

			fmt.Fprintln(out, mutedStyle.Render("Crops: "+joinOrDash(view.Crops)))
			fmt.Fprintln(out, mutedStyle.Render("Seasons: "+joinOrDash(view.Seasons)))

			comparison := view.Comparison
			if comparison.Message != "" {
				fmt.Fprintln(out, warnStyle.Render(comparison.Message))
				return nil
			}

			if comparison.XAxis == "name" {
				renderMetrics(out, "Comparison", comparison.Metrics)
				return nil
			}

			renderSeries(out, "Comparison", seriesCrops(comparison.Series, selection.Crops), comparison.Series)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&crops, "crops", nil, "culturas a comparar (separadas por vírgula)")
	cmd.Flags().StringSliceVar(&seasons, "seasons", nil, "estações a comparar (ex: \"Spring 2023\")")
	cmd.Flags().StringVar(&chart, "chart", "bar", "tipo de gráfico: bar ou line")
	return cmd
}

func (rt *runtime) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Série histórica de colheita por estação",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			view, err := rt.services.Views.History(cmd.Context())
			if err != nil {
				return err
			}

			renderSeries(cmd.OutOrStdout(), "Yield by Season", view.Crops, view.Series)
			return nil
		},
	}
}

func (rt *runtime) seasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "Lista as estações com histórico",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(); err != nil {
				return err
			}

			seasons, err := rt.services.Views.Seasons(cmd.Context())
			if err != nil {
				return err
			}

			for _, season := range seasons {
				fmt.Fprintln(cmd.OutOrStdout(), season)
			}
			return nil
		},
	}
}

func renderSummary(w io.Writer, summary domain.DashboardSummary) {
	t := newTable("Summary", "Total Crops", "Average Progress", "Top Crop", "Current Season")
	t.add(
		fmt.Sprint(summary.TotalCrops),
		progressText(float64(summary.AverageProgress)),
		fmt.Sprintf("%s (%s)", orDash(summary.TopCrop), fmt.Sprintf("%g%%", summary.TopProgress)),
		orDash(summary.CurrentSeason),
	)
	t.render(w)
}

func renderEfficiency(w io.Writer, entries []domain.EfficiencyEntry) {
	t := newTable("Efficiency vs Target", "Crop", "Efficiency", "Trend")
	for _, e := range entries {
		trend := okStyle.Render("▲ " + e.Trend)
		if e.Trend == domain.TrendDown {
			trend = warnStyle.Render("▼ " + e.Trend)
		}
		t.add(e.Name, fmt.Sprintf("%+d%%", e.Efficiency), trend)
	}
	t.render(w)
}

// seriesCrops usa as culturas selecionadas ou, sem seleção, as presentes na série
func seriesCrops(series []domain.HistoricalSeriesEntry, selected []string) []string {
	if len(selected) > 0 {
		return selected
	}

	seen := map[string]struct{}{}
	crops := []string{}
	for _, entry := range series {
		for crop := range entry.Crops {
			if _, ok := seen[crop]; !ok {
				seen[crop] = struct{}{}
				crops = append(crops, crop)
			}
		}
	}
	sort.Strings(crops)
	return crops
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
