package report

import (
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Classification is a delinquency bucket for a non-performing loan
type Classification string

const (
	ClassificationSubstandard Classification = "kurang_lancar" // 91-120 days past due
	ClassificationDoubtful    Classification = "diragukan"     // 121-180 days past due
	ClassificationLoss        Classification = "macet"         // >180 days past due
)

// IsValid checks if the classification is a valid NPL bucket
func (c Classification) IsValid() bool {
	return c == ClassificationSubstandard || c == ClassificationDoubtful || c == ClassificationLoss
}

// String returns the string representation of Classification
func (c Classification) String() string {
	return string(c)
}

// MinDaysPastDue is the smallest day count the classification engine accepts.
// Loans under 91 days past due are not non-performing and belong on the
// member receivables report instead.
const MinDaysPastDue = 91

// Minimum provisioning percentages mandated per bucket
var (
	minProvisionSubstandard = decimal.NewFromInt(10)
	minProvisionDoubtful    = decimal.NewFromInt(50)
	minProvisionLoss        = decimal.NewFromInt(100)
)

// Classify maps a day-past-due count to its delinquency bucket.
// The engine is stateless: it is re-evaluated fresh on every call from the
// day count supplied by the caller and does not itself track elapsed time.
func Classify(daysPastDue int) (Classification, error) {
	switch {
	case daysPastDue < MinDaysPastDue:
		return "", shared.NewDomainError("DAYS_PAST_DUE_BELOW_NPL",
			"Days past due below 91 is not a non-performing loan")
	case daysPastDue <= 120:
		return ClassificationSubstandard, nil
	case daysPastDue <= 180:
		return ClassificationDoubtful, nil
	default:
		return ClassificationLoss, nil
	}
}

// MinimumProvisionPct returns the mandated minimum provisioning percentage
// for the bucket
func MinimumProvisionPct(c Classification) decimal.Decimal {
	switch c {
	case ClassificationSubstandard:
		return minProvisionSubstandard
	case ClassificationDoubtful:
		return minProvisionDoubtful
	case ClassificationLoss:
		return minProvisionLoss
	default:
		return decimal.Zero
	}
}
