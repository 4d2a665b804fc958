package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	reportapp "github.com/koperasi/backend/internal/application/report"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/koperasi/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockReportRepository implements report.FinancialReportRepository for testing
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, rep *report.FinancialReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, rep *report.FinancialReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepository) SaveWithLock(ctx context.Context, rep *report.FinancialReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepository) FindByIDForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) (*report.FinancialReport, error) {
	args := m.Called(ctx, cooperativeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.FinancialReport), args.Error(1)
}

func (m *MockReportRepository) FindAllForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter report.ReportFilter) ([]report.FinancialReport, error) {
	args := m.Called(ctx, cooperativeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.FinancialReport), args.Error(1)
}

func (m *MockReportRepository) CountForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter report.ReportFilter) (int64, error) {
	args := m.Called(ctx, cooperativeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) ExistsForPeriod(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) (bool, error) {
	args := m.Called(ctx, cooperativeID, reportType, year)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportRepository) DeleteForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) error {
	args := m.Called(ctx, cooperativeID, id)
	return args.Error(0)
}

// MockActorDirectory implements report.ActorDirectory for testing
type MockActorDirectory struct {
	mock.Mock
}

func (m *MockActorDirectory) RolesFor(ctx context.Context, cooperativeID, actorID uuid.UUID) (report.RoleSet, error) {
	args := m.Called(ctx, cooperativeID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.RoleSet), args.Error(1)
}

type reportHandlerFixture struct {
	repo   *MockReportRepository
	actors *MockActorDirectory
	router *gin.Engine
}

func newReportHandlerFixture(t *testing.T, cooperativeID, actorID uuid.UUID) *reportHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	repo := new(MockReportRepository)
	actors := new(MockActorDirectory)
	service := reportapp.NewReportService(repo, actors, zap.NewNop())
	h := NewReportHandler(service)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if cooperativeID != uuid.Nil {
			c.Set(middleware.JWTCooperativeIDKey, cooperativeID.String())
		}
		if actorID != uuid.Nil {
			c.Set(middleware.JWTUserIDKey, actorID.String())
		}
		c.Next()
	})

	reports := r.Group("/api/v1/reports")
	{
		reports.POST("/validate", h.ValidateReport)
		reports.POST("", h.CreateReport)
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
		reports.PUT("/:id", h.UpdateReport)
		reports.DELETE("/:id", h.DeleteReport)
		reports.POST("/:id/submit", h.SubmitReport)
		reports.POST("/:id/approve", h.ApproveReport)
		reports.POST("/:id/reject", h.RejectReport)
	}

	return &reportHandlerFixture{repo: repo, actors: actors, router: r}
}

func (f *reportHandlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// expectNoBaseline stubs the prior-year lookup done during validation
func (f *reportHandlerFixture) expectNoBaseline() {
	f.repo.On("FindAllForCooperative", mock.Anything, mock.Anything, mock.Anything).
		Return([]report.FinancialReport{}, nil)
}

func notesInput() report.ReportInput {
	return report.ReportInput{
		ReportType:      report.ReportTypeNotesToFinancial,
		ReportingYear:   2025,
		ReportingPeriod: report.PeriodAnnual,
		Lines: report.ReportLines{
			NoteSections: []report.NoteSection{
				{Title: "Kebijakan Akuntansi", Content: "Laporan disusun berdasarkan SAK ETAP.", SortOrder: 1},
			},
		},
	}
}

func newDraftReport(t *testing.T, cooperativeID, createdBy uuid.UUID) *report.FinancialReport {
	t.Helper()
	r, err := report.NewFinancialReport(cooperativeID, notesInput(), createdBy)
	require.NoError(t, err)
	return r
}

func TestReportHandlerCreate(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	t.Run("valid payload returns 201", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		f.expectNoBaseline()
		f.repo.On("ExistsForPeriod", mock.Anything, coopID, report.ReportTypeNotesToFinancial, 2025).Return(false, nil)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/reports", notesInput())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"draft"`)
		assert.Contains(t, w.Body.String(), coopID.String())
		f.repo.AssertExpectations(t)
	})

	t.Run("blocking violations return 422 with the violation list", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		f.expectNoBaseline()

		input := notesInput()
		input.Lines = report.ReportLines{}
		w := f.do(http.MethodPost, "/api/v1/reports", input)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
		assert.Contains(t, w.Body.String(), "EMPTY_REPORT")
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate period returns 409", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		f.expectNoBaseline()
		f.repo.On("ExistsForPeriod", mock.Anything, coopID, report.ReportTypeNotesToFinancial, 2025).Return(true, nil)

		w := f.do(http.MethodPost, "/api/v1/reports", notesInput())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_CONFLICT")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		f := newReportHandlerFixture(t, uuid.Nil, uuid.Nil)
		w := f.do(http.MethodPost, "/api/v1/reports", notesInput())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestReportHandlerGet(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	t.Run("existing report is returned", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		draft := newDraftReport(t, coopID, actorID)
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, draft.ID).Return(draft, nil)

		w := f.do(http.MethodGet, "/api/v1/reports/"+draft.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), draft.ID.String())
		assert.Contains(t, w.Body.String(), "Kebijakan Akuntansi")
	})

	t.Run("unknown report returns 404", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		id := uuid.New()
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, id).Return(nil, shared.ErrNotFound)

		w := f.do(http.MethodGet, "/api/v1/reports/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("invalid ID returns 400", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		w := f.do(http.MethodGet, "/api/v1/reports/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandlerLifecycle(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	t.Run("operator submit returns 403", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		draft := newDraftReport(t, coopID, actorID)
		f.expectNoBaseline()
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, draft.ID).Return(draft, nil)
		f.actors.On("RolesFor", mock.Anything, coopID, actorID).Return(report.RoleSet{report.RoleOperator}, nil)

		w := f.do(http.MethodPost, "/api/v1/reports/"+draft.ID.String()+"/submit", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("treasurer submit succeeds", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		draft := newDraftReport(t, coopID, actorID)
		f.expectNoBaseline()
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, draft.ID).Return(draft, nil)
		f.actors.On("RolesFor", mock.Anything, coopID, actorID).Return(report.RoleSet{report.RoleTreasurer}, nil)
		f.repo.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/reports/"+draft.ID.String()+"/submit", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"submitted"`)
	})

	t.Run("approving a draft returns 409", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		draft := newDraftReport(t, coopID, actorID)
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, draft.ID).Return(draft, nil)
		f.actors.On("RolesFor", mock.Anything, coopID, actorID).Return(report.RoleSet{report.RoleChairman}, nil)

		w := f.do(http.MethodPost, "/api/v1/reports/"+draft.ID.String()+"/approve", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_STATE")
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		id := uuid.New()

		w := f.do(http.MethodPost, "/api/v1/reports/"+id.String()+"/reject", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("chairman reject records the reason", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		submitted := newDraftReport(t, coopID, actorID)
		require.NoError(t, submitted.Submit(actorID, report.RoleSet{report.RoleTreasurer}))
		submitted.ClearDomainEvents()

		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, submitted.ID).Return(submitted, nil)
		f.actors.On("RolesFor", mock.Anything, coopID, actorID).Return(report.RoleSet{report.RoleChairman}, nil)
		f.repo.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/reports/"+submitted.ID.String()+"/reject",
			reportapp.RejectReportRequest{Reason: "saldo neraca tidak seimbang"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"rejected"`)
		assert.Contains(t, w.Body.String(), "saldo neraca tidak seimbang")
	})
}

func TestReportHandlerValidate(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	t.Run("valid payload reports no violations", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		f.expectNoBaseline()

		w := f.do(http.MethodPost, "/api/v1/reports/validate", notesInput())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":true`)
	})

	t.Run("invalid payload lists violations without persisting", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		f.expectNoBaseline()

		input := notesInput()
		input.Lines = report.ReportLines{}
		w := f.do(http.MethodPost, "/api/v1/reports/validate", input)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":false`)
		assert.Contains(t, w.Body.String(), "EMPTY_REPORT")
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReportHandlerList(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	f := newReportHandlerFixture(t, coopID, actorID)
	draft := newDraftReport(t, coopID, actorID)
	f.repo.On("FindAllForCooperative", mock.Anything, coopID, mock.Anything).
		Return([]report.FinancialReport{*draft}, nil)
	f.repo.On("CountForCooperative", mock.Anything, coopID, mock.Anything).Return(int64(1), nil)

	w := f.do(http.MethodGet, "/api/v1/reports?report_type=notes_to_financial&page=1&page_size=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), draft.ID.String())
}

func TestReportHandlerDelete(t *testing.T) {
	coopID := uuid.New()
	actorID := uuid.New()

	t.Run("draft can be deleted", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		draft := newDraftReport(t, coopID, actorID)
		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, draft.ID).Return(draft, nil)
		f.repo.On("DeleteForCooperative", mock.Anything, coopID, draft.ID).Return(nil)

		w := f.do(http.MethodDelete, "/api/v1/reports/"+draft.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("submitted report can not be deleted", func(t *testing.T) {
		f := newReportHandlerFixture(t, coopID, actorID)
		submitted := newDraftReport(t, coopID, actorID)
		require.NoError(t, submitted.Submit(actorID, report.RoleSet{report.RoleTreasurer}))

		f.repo.On("FindByIDForCooperative", mock.Anything, coopID, submitted.ID).Return(submitted, nil)

		w := f.do(http.MethodDelete, "/api/v1/reports/"+submitted.ID.String(), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		f.repo.AssertNotCalled(t, "DeleteForCooperative", mock.Anything, mock.Anything, mock.Anything)
	})
}
