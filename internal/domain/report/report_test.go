package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftInput() ReportInput {
	return ReportInput{
		ReportType:      ReportTypeNotesToFinancial,
		ReportingYear:   2025,
		ReportingPeriod: PeriodAnnual,
		Lines: ReportLines{
			NoteSections: []NoteSection{
				{Title: "Kebijakan Akuntansi", Content: "Laporan disusun berdasarkan SAK-ETAP.", SortOrder: 1},
			},
		},
	}
}

func newDraft(t *testing.T) *FinancialReport {
	t.Helper()
	r, err := NewFinancialReport(uuid.New(), draftInput(), uuid.New())
	require.NoError(t, err)
	return r
}

func TestNewFinancialReport(t *testing.T) {
	coopID := uuid.New()
	userID := uuid.New()

	t.Run("creates draft report with creation event", func(t *testing.T) {
		r, err := NewFinancialReport(coopID, draftInput(), userID)
		require.NoError(t, err)

		assert.Equal(t, coopID, r.CooperativeID)
		assert.Equal(t, ReportStatusDraft, r.Status)
		assert.Equal(t, ReportTypeNotesToFinancial, r.ReportType)
		assert.Equal(t, 2025, r.ReportingYear)
		assert.True(t, r.IsDraft())
		assert.True(t, r.CanDelete())
		assert.Equal(t, 1, r.LineCount())

		events := r.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReportCreated, events[0].EventType())
	})

	t.Run("rejects unknown report type", func(t *testing.T) {
		input := draftInput()
		input.ReportType = ReportType("neraca_gabungan")
		_, err := NewFinancialReport(coopID, input, userID)
		assert.Error(t, err)
	})

	t.Run("rejects reporting year before 2020", func(t *testing.T) {
		input := draftInput()
		input.ReportingYear = 2019
		_, err := NewFinancialReport(coopID, input, userID)
		assert.Error(t, err)
	})

	t.Run("rejects invalid reporting period", func(t *testing.T) {
		input := draftInput()
		input.ReportingPeriod = ReportingPeriod("Q5")
		_, err := NewFinancialReport(coopID, input, userID)
		assert.Error(t, err)
	})

	t.Run("rejects nil creator", func(t *testing.T) {
		_, err := NewFinancialReport(coopID, draftInput(), uuid.Nil)
		assert.Error(t, err)
	})
}

func TestFinancialReportUpdateDraft(t *testing.T) {
	t.Run("replaces contents while draft", func(t *testing.T) {
		r := newDraft(t)
		before := r.GetVersion()

		input := draftInput()
		input.Notes = "Revisi kedua"
		input.Lines.NoteSections = append(input.Lines.NoteSections,
			NoteSection{Title: "Piutang", Content: "Rincian piutang anggota.", SortOrder: 2})

		require.NoError(t, r.UpdateDraft(input))
		assert.Equal(t, "Revisi kedua", r.Notes)
		assert.Equal(t, 2, r.LineCount())
		assert.Equal(t, before+1, r.GetVersion())
	})

	t.Run("report type is immutable", func(t *testing.T) {
		r := newDraft(t)
		input := draftInput()
		input.ReportType = ReportTypeBalanceSheet
		assert.Error(t, r.UpdateDraft(input))
	})

	t.Run("reporting year is immutable", func(t *testing.T) {
		r := newDraft(t)
		input := draftInput()
		input.ReportingYear = 2024
		assert.Error(t, r.UpdateDraft(input))
	})

	t.Run("rejected after submission", func(t *testing.T) {
		r := newDraft(t)
		require.NoError(t, r.Submit(uuid.New(), RoleSet{RoleTreasurer}))

		err := r.UpdateDraft(draftInput())
		require.Error(t, err)
		assert.True(t, IsStateError(err))
	})
}

func TestFinancialReportSubmit(t *testing.T) {
	actor := uuid.New()

	t.Run("treasurer submits a draft", func(t *testing.T) {
		r := newDraft(t)
		r.ClearDomainEvents()

		require.NoError(t, r.Submit(actor, RoleSet{RoleTreasurer}))
		assert.True(t, r.IsSubmitted())
		require.NotNil(t, r.SubmittedAt)
		assert.Equal(t, actor, *r.SubmittedBy)
		assert.False(t, r.CanDelete())

		events := r.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReportSubmitted, events[0].EventType())
	})

	t.Run("operator cannot submit", func(t *testing.T) {
		r := newDraft(t)
		err := r.Submit(actor, RoleSet{RoleOperator})
		require.Error(t, err)
		assert.True(t, IsAuthorizationError(err))
		assert.True(t, r.IsDraft())
	})

	t.Run("double submit is a state error", func(t *testing.T) {
		r := newDraft(t)
		require.NoError(t, r.Submit(actor, RoleSet{RoleTreasurer}))

		err := r.Submit(actor, RoleSet{RoleTreasurer})
		require.Error(t, err)
		assert.True(t, IsStateError(err))
	})
}

func TestFinancialReportApprove(t *testing.T) {
	submitter := uuid.New()
	reviewer := uuid.New()

	submitted := func(t *testing.T) *FinancialReport {
		r := newDraft(t)
		require.NoError(t, r.Submit(submitter, RoleSet{RoleTreasurer}))
		r.ClearDomainEvents()
		return r
	}

	t.Run("chairman approves a submitted report", func(t *testing.T) {
		r := submitted(t)
		require.NoError(t, r.Approve(reviewer, RoleSet{RoleChairman}))
		assert.True(t, r.IsApproved())
		assert.Equal(t, reviewer, *r.ApprovedBy)

		events := r.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReportApproved, events[0].EventType())
	})

	t.Run("supervisor approves a submitted report", func(t *testing.T) {
		r := submitted(t)
		require.NoError(t, r.Approve(reviewer, RoleSet{RoleSupervisor}))
		assert.True(t, r.IsApproved())
	})

	t.Run("treasurer cannot approve", func(t *testing.T) {
		r := submitted(t)
		err := r.Approve(reviewer, RoleSet{RoleTreasurer})
		require.Error(t, err)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("submitter cannot approve their own submission", func(t *testing.T) {
		r := newDraft(t)
		chairman := uuid.New()
		require.NoError(t, r.Submit(chairman, RoleSet{RoleChairman}))

		err := r.Approve(chairman, RoleSet{RoleChairman})
		require.Error(t, err)
		assert.True(t, IsAuthorizationError(err))
		assert.True(t, r.IsSubmitted())

		require.NoError(t, r.Approve(reviewer, RoleSet{RoleSupervisor}))
	})

	t.Run("cannot approve a draft", func(t *testing.T) {
		r := newDraft(t)
		err := r.Approve(reviewer, RoleSet{RoleChairman})
		require.Error(t, err)
		assert.True(t, IsStateError(err))
	})

	t.Run("approved is terminal", func(t *testing.T) {
		r := submitted(t)
		require.NoError(t, r.Approve(reviewer, RoleSet{RoleChairman}))

		assert.True(t, IsStateError(r.Approve(reviewer, RoleSet{RoleChairman})))
		assert.True(t, IsStateError(r.Reject(reviewer, RoleSet{RoleChairman}, "x")))
		assert.True(t, IsStateError(r.Submit(submitter, RoleSet{RoleTreasurer})))
	})
}

func TestFinancialReportReject(t *testing.T) {
	reviewer := uuid.New()

	submitted := func(t *testing.T) *FinancialReport {
		r := newDraft(t)
		require.NoError(t, r.Submit(uuid.New(), RoleSet{RoleTreasurer}))
		r.ClearDomainEvents()
		return r
	}

	t.Run("rejection records the reason", func(t *testing.T) {
		r := submitted(t)
		require.NoError(t, r.Reject(reviewer, RoleSet{RoleSupervisor}, "Saldo kas tidak cocok"))
		assert.True(t, r.IsRejected())
		assert.Equal(t, "Saldo kas tidak cocok", r.RejectionReason)

		events := r.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReportRejected, events[0].EventType())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		r := submitted(t)
		assert.Error(t, r.Reject(reviewer, RoleSet{RoleChairman}, ""))
		assert.True(t, r.IsSubmitted())
	})

	t.Run("reason is capped at 500 characters", func(t *testing.T) {
		r := submitted(t)
		assert.Error(t, r.Reject(reviewer, RoleSet{RoleChairman}, strings.Repeat("a", 501)))
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		r := submitted(t)
		require.NoError(t, r.Reject(reviewer, RoleSet{RoleChairman}, "tidak lengkap"))
		assert.True(t, IsStateError(r.Submit(uuid.New(), RoleSet{RoleTreasurer})))
		assert.True(t, IsStateError(r.Approve(reviewer, RoleSet{RoleChairman})))
	})
}
