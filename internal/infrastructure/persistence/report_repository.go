package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/koperasi/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFinancialReportRepository implements FinancialReportRepository using GORM.
// Header and line items are always written inside one transaction so a report
// is never observable half-saved.
type GormFinancialReportRepository struct {
	db *gorm.DB
}

// NewGormFinancialReportRepository creates a new GormFinancialReportRepository
func NewGormFinancialReportRepository(db *gorm.DB) *GormFinancialReportRepository {
	return &GormFinancialReportRepository{db: db}
}

// Create persists a new report and all its line items atomically.
// A duplicate (cooperative, type, year) surfaces as a ConflictError.
func (r *GormFinancialReportRepository) Create(ctx context.Context, rep *report.FinancialReport) error {
	model, err := models.FinancialReportModelFromDomain(rep)
	if err != nil {
		return report.NewDependencyError("repository", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := model.Lines
		model.Lines = nil
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := tx.CreateInBatches(lines, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return report.NewConflictError(fmt.Sprintf(
				"a %s report already exists for %d", rep.ReportType, rep.ReportingYear))
		}
		return report.NewDependencyError("repository", err)
	}
	return nil
}

// Update rewrites the header and replaces every line item atomically, with an
// optimistic version check against concurrent drafts.
func (r *GormFinancialReportRepository) Update(ctx context.Context, rep *report.FinancialReport) error {
	model, err := models.FinancialReportModelFromDomain(rep)
	if err != nil {
		return report.NewDependencyError("repository", err)
	}

	expectedVersion := rep.GetVersion() - 1

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := model.Lines
		model.Lines = nil

		result := tx.Model(&models.FinancialReportModel{}).
			Where("id = ? AND version = ?", rep.ID, expectedVersion).
			Select("*").Omit("id", "created_at", "cooperative_id", "created_by").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return report.NewConflictError("report was modified by another user")
		}

		if err := tx.Where("report_id = ?", rep.ID).
			Delete(&models.ReportLineItemModel{}).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := tx.CreateInBatches(lines, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if report.IsConflict(err) {
			return err
		}
		return report.NewDependencyError("repository", err)
	}
	return nil
}

// SaveWithLock persists a lifecycle transition under optimistic locking.
// Line items are untouched: transitions only move the header.
func (r *GormFinancialReportRepository) SaveWithLock(ctx context.Context, rep *report.FinancialReport) error {
	model, err := models.FinancialReportModelFromDomain(rep)
	if err != nil {
		return report.NewDependencyError("repository", err)
	}
	model.Lines = nil

	expectedVersion := rep.GetVersion() - 1

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.FinancialReportModel
		if err := tx.Select("version").Where("id = ?", rep.ID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if current.Version != expectedVersion {
			return report.NewConflictError("report was modified by another user")
		}

		result := tx.Model(&models.FinancialReportModel{}).
			Where("id = ? AND version = ?", rep.ID, expectedVersion).
			Select("*").Omit("id", "created_at", "cooperative_id", "created_by").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return report.NewConflictError("report was modified by another user")
		}
		return nil
	})
	if err != nil {
		if report.IsConflict(err) || errors.Is(err, shared.ErrNotFound) {
			return err
		}
		return report.NewDependencyError("repository", err)
	}
	return nil
}

// FindByIDForCooperative loads one report with its line items
func (r *GormFinancialReportRepository) FindByIDForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) (*report.FinancialReport, error) {
	var model models.FinancialReportModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_type, position")
		}).
		Where("cooperative_id = ? AND id = ?", cooperativeID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, report.NewDependencyError("repository", err)
	}
	return model.ToDomain()
}

// FindAllForCooperative lists reports for a cooperative with filters
func (r *GormFinancialReportRepository) FindAllForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter report.ReportFilter) ([]report.FinancialReport, error) {
	var reportModels []models.FinancialReportModel
	query := r.db.WithContext(ctx).Model(&models.FinancialReportModel{}).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_type, position")
		}).
		Where("cooperative_id = ?", cooperativeID)
	query = applyReportFilter(query, filter)
	query = applyPagination(query, filter)

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]report.FinancialReport, 0, len(reportModels))
	for i := range reportModels {
		domain, err := reportModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		reports = append(reports, *domain)
	}
	return reports, nil
}

// CountForCooperative counts reports matching the filter
func (r *GormFinancialReportRepository) CountForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter report.ReportFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.FinancialReportModel{}).
		Where("cooperative_id = ?", cooperativeID)
	query = applyReportFilter(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsForPeriod reports whether a (cooperative, type, year) report exists
func (r *GormFinancialReportRepository) ExistsForPeriod(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FinancialReportModel{}).
		Where("cooperative_id = ? AND report_type = ? AND reporting_year = ?",
			cooperativeID, reportType.String(), year).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteForCooperative removes a report and its line items atomically
func (r *GormFinancialReportRepository) DeleteForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).
			Delete(&models.ReportLineItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("cooperative_id = ? AND id = ?", cooperativeID, id).
			Delete(&models.FinancialReportModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func applyReportFilter(query *gorm.DB, filter report.ReportFilter) *gorm.DB {
	if filter.ReportType != nil {
		query = query.Where("report_type = ?", filter.ReportType.String())
	}
	if filter.ReportingYear != nil {
		query = query.Where("reporting_year = ?", *filter.ReportingYear)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	return query
}

func applyPagination(query *gorm.DB, filter report.ReportFilter) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, ReportSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
