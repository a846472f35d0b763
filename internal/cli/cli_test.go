package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating/mocks"
	dashmocks "github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting/mocks"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	yieldmocks "github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding/mocks"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
)

var authenticated = domain.Session{
	State: domain.SessionAuthenticated,
	User:  &domain.User{ID: "u1", Name: "Ana", Email: "ana@farm.io"},
}

type harness struct {
	sessions *authmocks.MockSessionStore
	yields   *yieldmocks.MockManager
	views    *dashmocks.MockViewer
	reports  *reportmocks.MockExporter
	closed   bool
}

func newHarness(t *testing.T, session domain.Session) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		sessions: authmocks.NewMockSessionStore(ctrl),
		yields:   yieldmocks.NewMockManager(ctrl),
		views:    dashmocks.NewMockViewer(ctrl),
		reports:  reportmocks.NewMockExporter(ctrl),
	}
	h.sessions.EXPECT().Init(gomock.Any()).Return(session)
	h.sessions.EXPECT().Session().Return(session).AnyTimes()
	return h
}

func (h *harness) run(args ...string) (string, error) {
	factory := func(context.Context) (*Services, func(), error) {
		return &Services{
			Sessions: h.sessions,
			Yields:   h.yields,
			Views:    h.views,
			Reports:  h.reports,
		}, func() { h.closed = true }, nil
	}

	var out, errOut bytes.Buffer
	err := Run(context.Background(), factory, func(root *cobra.Command) {
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetArgs(args)
	})
	return out.String(), err
}

func TestLogin(t *testing.T) {
	h := newHarness(t, domain.Session{State: domain.SessionAnonymous})
	h.sessions.EXPECT().Login(gomock.Any(), "ana@farm.io", "secret").Return(authenticated, nil)

	out, err := h.run("login", "--email", "ana@farm.io", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana <ana@farm.io>")
	assert.True(t, h.closed)
}

func TestLogin_Falha(t *testing.T) {
	h := newHarness(t, domain.Session{State: domain.SessionAnonymous})
	authErr := authenticating.NewAuthError(authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email and password are required")
	h.sessions.EXPECT().Login(gomock.Any(), "", "").Return(domain.Session{State: domain.SessionAnonymous}, authErr)

	_, err := h.run("login")
	require.Error(t, err)
	assert.Equal(t, "Email and password are required", describe(err))
	assert.True(t, h.closed, "recursos liberados mesmo com falha")
}

func TestDataCommands_RequireSession(t *testing.T) {
	for _, args := range [][]string{{"dashboard"}, {"yields", "list"}, {"history"}, {"report", "crops"}} {
		h := newHarness(t, domain.Session{State: domain.SessionAnonymous})

		_, err := h.run(args...)
		assert.ErrorIs(t, err, ErrNotAuthenticated, args)
		assert.True(t, h.closed, args)
	}
}

func TestYieldsList(t *testing.T) {
	h := newHarness(t, authenticated)
	h.yields.EXPECT().List(gomock.Any()).Return([]domain.PerformanceMetric{
		{YieldRecord: domain.YieldRecord{ID: "1", CropName: "Wheat", Quantity: 1200, TargetYield: 1500, Unit: "kg", Season: "Summer 2023"}, Progress: 80},
	}, nil)

	out, err := h.run("yields", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Crop Inventory")
	assert.Contains(t, out, "Wheat")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Summer 2023")
}

func TestYieldsAdd_SoFlagsInformadas(t *testing.T) {
	h := newHarness(t, authenticated)
	h.yields.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, form yielding.Form) (*domain.PerformanceMetric, error) {
		assert.Equal(t, "Corn", form.CropName)
		require.NotNil(t, form.Quantity)
		assert.Equal(t, 0.0, *form.Quantity)
		assert.Nil(t, form.TargetYield, "meta não informada deve continuar ausente")
		return nil, &yielding.ValidationError{Fields: map[string]string{"targetYield": "Target yield is required"}}
	})

	_, err := h.run("yields", "add", "--crop", "Corn", "--quantity", "0")
	require.Error(t, err)
	assert.Contains(t, describe(err), "targetYield: Target yield is required")
}

func TestYieldsUpdate_PartindoDoRegistroAtual(t *testing.T) {
	h := newHarness(t, authenticated)
	current := &domain.PerformanceMetric{YieldRecord: domain.YieldRecord{
		ID: "42", CropName: "Corn", Quantity: 10, TargetYield: 20, Unit: "ton", Season: "Fall 2023",
	}}

	h.yields.EXPECT().Get(gomock.Any(), "42").Return(current, nil)
	h.yields.EXPECT().Update(gomock.Any(), "42", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, form yielding.Form) (*domain.PerformanceMetric, error) {
		assert.Equal(t, "Corn", form.CropName)
		assert.Equal(t, "ton", form.Unit)
		assert.Equal(t, 15.0, *form.Quantity)
		assert.Equal(t, 20.0, *form.TargetYield)
		updated := *current
		updated.Quantity = 15
		return &updated, nil
	})

	out, err := h.run("yields", "update", "42", "--quantity", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "Registro atualizado: 42")
}

func TestYieldsDelete(t *testing.T) {
	h := newHarness(t, authenticated)
	h.yields.EXPECT().Delete(gomock.Any(), "42").Return(nil)

	out, err := h.run("yields", "delete", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Registro removido: 42")
}

func TestAnalytics_MensagemSemSelecao(t *testing.T) {
	h := newHarness(t, authenticated)
	h.views.EXPECT().
		Analytics(gomock.Any(), domain.ChartBar, domain.ComparisonSelection{}).
		Return(&domain.AnalyticsView{
			ChartType:  domain.ChartBar,
			Comparison: domain.Comparison{XAxis: "name", Message: domain.EmptyComparisonMessage},
		}, nil)

	out, err := h.run("analytics")
	require.NoError(t, err)
	assert.Contains(t, out, domain.EmptyComparisonMessage)
}

func TestAnalytics_ComparacaoPorEstacao(t *testing.T) {
	h := newHarness(t, authenticated)
	selection := domain.ComparisonSelection{Crops: []string{"Wheat"}, Seasons: []string{"Spring 2023"}}
	h.views.EXPECT().
		Analytics(gomock.Any(), domain.ChartLine, selection).
		Return(&domain.AnalyticsView{
			ChartType: domain.ChartLine,
			Comparison: domain.Comparison{
				XAxis:  "season",
				Series: []domain.HistoricalSeriesEntry{{Season: "Spring 2023", Crops: map[string]float64{"Wheat": 1250}}},
			},
		}, nil)

	out, err := h.run("analytics", "--crops", "Wheat", "--seasons", "Spring 2023", "--chart", "line")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring 2023")
	assert.Contains(t, out, "1250")
}

func TestDashboard(t *testing.T) {
	h := newHarness(t, authenticated)
	h.views.EXPECT().Dashboard(gomock.Any()).Return(&domain.DashboardView{
		Summary:    domain.DashboardSummary{TotalCrops: 1, AverageProgress: 110, TopCrop: "Corn", TopProgress: 110, CurrentSeason: "Summer 2023"},
		Efficiency: []domain.EfficiencyEntry{{Name: "Corn", Efficiency: 10, Trend: domain.TrendUp}},
		Forecast:   &domain.Forecast{Season: "Fall 2023", Crops: map[string]float64{"Corn": 950}},
	}, nil)

	out, err := h.run("dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Forecast Fall 2023")
	assert.Contains(t, out, "+10%")
	assert.Contains(t, out, "Corn (110%)")
}

func TestReport_GravaArquivo(t *testing.T) {
	h := newHarness(t, authenticated)
	dir := t.TempDir()

	h.reports.EXPECT().
		Export(gomock.Any(), domain.ReportHistory, domain.FormatXLSX, domain.TriggerManual).
		Return(&reporting.Result{
			Export:  domain.ReportExport{FileName: "yield-history-2024-05-01.xlsx", SizeBytes: 3},
			Content: []byte("abc"),
		}, nil)

	out, err := h.run("report", "history", "--format", "xlsx", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "yield-history-2024-05-01.xlsx")

	content, err := os.ReadFile(filepath.Join(dir, "yield-history-2024-05-01.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(content))
}

func TestReport_TipoInvalido(t *testing.T) {
	h := newHarness(t, authenticated)

	_, err := h.run("report", "sales")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, describe(yieldapi.ErrMissingBaseURL), "YIELD_API_BASE_URL")
	assert.Equal(t, "backend respondeu 503: down (tente novamente)", describe(&yieldapi.APIError{StatusCode: 503, Message: "down"}))
	assert.Equal(t, "backend respondeu 400: bad", describe(&yieldapi.APIError{StatusCode: 400, Message: "bad"}))
}
