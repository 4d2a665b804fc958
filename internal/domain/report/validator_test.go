package report

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(vs Violations) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestValidatorRegistry(t *testing.T) {
	registry := NewValidatorRegistry()

	t.Run("covers all eleven statutory report types", func(t *testing.T) {
		for _, rt := range AllReportTypes {
			v, ok := registry.ValidatorFor(rt)
			require.True(t, ok, "no validator for %s", rt)
			assert.Equal(t, rt, v.ReportType())
		}
	})

	t.Run("rejects unknown report type", func(t *testing.T) {
		input := &ReportInput{
			ReportType:      ReportType("laporan_lain"),
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
		}
		vs := registry.Validate(input, nil)
		assert.Contains(t, codes(vs), "INVALID_REPORT_TYPE")
	})

	t.Run("rejects reporting year before 2020", func(t *testing.T) {
		input := &ReportInput{
			ReportType:      ReportTypeNotesToFinancial,
			ReportingYear:   2019,
			ReportingPeriod: PeriodAnnual,
			Lines: ReportLines{NoteSections: []NoteSection{
				{Title: "Umum", Content: "Profil koperasi."},
			}},
		}
		vs := registry.Validate(input, nil)
		assert.Contains(t, codes(vs), "INVALID_REPORTING_YEAR")
	})

	t.Run("rejects empty report", func(t *testing.T) {
		input := &ReportInput{
			ReportType:      ReportTypeBalanceSheet,
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
		}
		vs := registry.Validate(input, nil)
		assert.Contains(t, codes(vs), "EMPTY_REPORT")
	})

	t.Run("revalidation of the same payload yields the same violations", func(t *testing.T) {
		input := &ReportInput{
			ReportType:      ReportTypeBalanceSheet,
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
			Lines: ReportLines{Accounts: []AccountLine{
				{Code: "1-100", Name: "Kas", Category: AccountCategoryAsset, CurrentAmount: d("5000000")},
				{Code: "2-100", Name: "Hutang", Category: AccountCategoryLiability, CurrentAmount: d("1000000")},
				{Code: "3-100", Name: "Simpanan Pokok", Category: AccountCategoryEquity, CurrentAmount: d("3000000")},
			}},
		}
		first := registry.Validate(input, nil)
		second := registry.Validate(input, nil)
		assert.Equal(t, first, second)
		assert.Contains(t, codes(first), "BALANCE_EQUATION")
	})

	t.Run("header and body violations accumulate", func(t *testing.T) {
		// Bad period plus wrong line kind for the type: both reported.
		input := &ReportInput{
			ReportType:      ReportTypeBalanceSheet,
			ReportingYear:   2025,
			ReportingPeriod: ReportingPeriod("semester"),
			Lines: ReportLines{NoteSections: []NoteSection{
				{Title: "Umum", Content: "Profil koperasi."},
			}},
		}
		vs := registry.Validate(input, nil)
		assert.Contains(t, codes(vs), "INVALID_REPORTING_PERIOD")
		assert.Contains(t, codes(vs), "WRONG_LINE_KIND")
	})
}

func TestNotesValidator(t *testing.T) {
	registry := NewValidatorRegistry()

	input := func(sections ...NoteSection) *ReportInput {
		return &ReportInput{
			ReportType:      ReportTypeNotesToFinancial,
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
			Lines:           ReportLines{NoteSections: sections},
		}
	}

	t.Run("accepts a well-formed note", func(t *testing.T) {
		vs := registry.Validate(input(
			NoteSection{Title: "Kebijakan Akuntansi", Content: "Disusun berdasarkan SAK-ETAP.", SortOrder: 1},
			NoteSection{Title: "Piutang", Content: "Rincian piutang anggota.", SortOrder: 2},
		), nil)
		assert.Empty(t, vs)
	})

	t.Run("requires title and content", func(t *testing.T) {
		vs := registry.Validate(input(NoteSection{Title: "", Content: ""}), nil)
		require.Len(t, vs, 2)
		assert.Equal(t, "lines[0].title", vs[0].Field)
		assert.Equal(t, "lines[0].content", vs[1].Field)
	})

	t.Run("caps title and content length", func(t *testing.T) {
		vs := registry.Validate(input(NoteSection{
			Title:   strings.Repeat("a", 201),
			Content: strings.Repeat("b", 10001),
		}), nil)
		assert.ElementsMatch(t, []string{"TOO_LONG", "TOO_LONG"}, codes(vs))
	})
}

func TestIncomeStatementValidator(t *testing.T) {
	registry := NewValidatorRegistry()

	input := func(lines ...AccountLine) *ReportInput {
		return &ReportInput{
			ReportType:      ReportTypeIncomeStatement,
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
			Lines:           ReportLines{Accounts: lines},
		}
	}

	t.Run("accepts revenue and expense lines", func(t *testing.T) {
		vs := registry.Validate(input(
			AccountLine{Code: "4-100", Name: "Pendapatan Jasa Simpan Pinjam", Category: AccountCategoryRevenue, CurrentAmount: d("150000000")},
			AccountLine{Code: "5-100", Name: "Beban Operasional", Category: AccountCategoryExpense, CurrentAmount: d("90000000")},
		), nil)
		assert.Empty(t, vs)
	})

	t.Run("rejects balance sheet category", func(t *testing.T) {
		vs := registry.Validate(input(
			AccountLine{Code: "1-100", Name: "Kas", Category: AccountCategoryAsset, CurrentAmount: d("1000")},
			AccountLine{Code: "5-100", Name: "Beban", Category: AccountCategoryExpense, CurrentAmount: d("1000")},
		), nil)
		assert.Contains(t, codes(vs), "INVALID_CATEGORY")
	})

	t.Run("requires at least one revenue and one expense line", func(t *testing.T) {
		vs := registry.Validate(input(
			AccountLine{Code: "4-100", Name: "Pendapatan", Category: AccountCategoryRevenue, CurrentAmount: d("1000")},
		), nil)
		assert.Contains(t, codes(vs), "MISSING_EXPENSE_LINE")
	})
}

func TestMemberBenefitValidator(t *testing.T) {
	registry := NewValidatorRegistry()

	t.Run("total must equal the sum of components", func(t *testing.T) {
		line := MemberBenefitLine{
			MemberID:               uuid.New(),
			MemberName:             "Siti Rahma",
			PurchaseBenefit:        d("250000"),
			LoanInterestBenefit:    d("100000"),
			SavingsInterestBenefit: d("50000"),
			SHUShare:               d("75000"),
			TotalBenefit:           d("475000"),
		}
		input := &ReportInput{
			ReportType:      ReportTypeMemberBenefit,
			ReportingYear:   2025,
			ReportingPeriod: PeriodAnnual,
			Lines:           ReportLines{MemberBenefits: []MemberBenefitLine{line}},
		}
		assert.Empty(t, registry.Validate(input, nil))

		line.TotalBenefit = d("480000")
		input.Lines.MemberBenefits = []MemberBenefitLine{line}
		vs := registry.Validate(input, nil)
		require.Len(t, vs, 1)
		assert.Equal(t, "TOTAL_MISMATCH", vs[0].Code)
	})
}
