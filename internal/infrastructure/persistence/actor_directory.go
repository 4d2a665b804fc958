package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActorDirectory resolves the roles an actor holds within a cooperative
// from the cooperative_members table.
type GormActorDirectory struct {
	db *gorm.DB
}

// NewGormActorDirectory creates a new GormActorDirectory
func NewGormActorDirectory(db *gorm.DB) *GormActorDirectory {
	return &GormActorDirectory{db: db}
}

// RolesFor returns the active roles of an actor in a cooperative.
// An actor with no membership gets an empty set, not an error: the domain
// turns that into an authorization failure.
func (d *GormActorDirectory) RolesFor(ctx context.Context, cooperativeID, actorID uuid.UUID) (report.RoleSet, error) {
	var memberships []models.CooperativeMemberModel
	if err := d.db.WithContext(ctx).
		Where("cooperative_id = ? AND user_id = ? AND active = ?", cooperativeID, actorID, true).
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	roles := make(report.RoleSet, 0, len(memberships))
	for _, m := range memberships {
		role := report.Role(m.Role)
		if role.IsValid() {
			roles = append(roles, role)
		}
	}
	return roles, nil
}
