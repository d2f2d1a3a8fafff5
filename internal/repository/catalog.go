package repository

import (
	"context"
	"database/sql"

	"github.com/kaledaljebur/HairHubConnect/internal/model"
)

// Catalog bundles the staff and service repositories behind the lookup
// surface the booking service consumes.  It exists so the booking
// package depends on one collaborator instead of two repositories.
type Catalog struct {
	services *ServiceRepo
	staff    *StaffRepo
}

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{services: NewServiceRepo(db), staff: NewStaffRepo(db)}
}

// ServiceByID resolves a service; ErrServiceNotFound for unknown ids.
func (c *Catalog) ServiceByID(ctx context.Context, id uint64) (model.Service, error) {
	return c.services.GetByID(ctx, id)
}

// StaffByID resolves a staff member; ErrStaffNotFound for unknown ids.
func (c *Catalog) StaffByID(ctx context.Context, id uint64) (model.Staff, error) {
	return c.staff.GetByID(ctx, id)
}
