package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// CooperativeAggregateRoot extends BaseAggregateRoot with cooperative scoping.
// Every row it owns belongs to exactly one cooperative; the caller is assumed
// to have resolved and authorized the cooperative ID already.
type CooperativeAggregateRoot struct {
	BaseAggregateRoot
	CooperativeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid;index"` // User who created this record
}

// NewCooperativeAggregateRoot creates a new cooperative-scoped aggregate root
func NewCooperativeAggregateRoot(cooperativeID uuid.UUID) CooperativeAggregateRoot {
	return CooperativeAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		CooperativeID:     cooperativeID,
	}
}

// NewCooperativeAggregateRootWithCreator creates a new cooperative-scoped aggregate root with creator info
func NewCooperativeAggregateRootWithCreator(cooperativeID, createdBy uuid.UUID) CooperativeAggregateRoot {
	return CooperativeAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		CooperativeID:     cooperativeID,
		CreatedBy:         &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (c *CooperativeAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	c.CreatedBy = &userID
}

// GetCreatedBy returns the creator user ID
func (c *CooperativeAggregateRoot) GetCreatedBy() *uuid.UUID {
	return c.CreatedBy
}
