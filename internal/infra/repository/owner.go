package repository

import (
	"context"

	"timeshare-portal/internal/infra/db"

	"github.com/google/uuid"
)

type OwnerRepository struct{}

func NewOwnerRepository() *OwnerRepository {
	return &OwnerRepository{}
}

func (r *OwnerRepository) ExistsByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	return ownerExists(ctx, dbtx, id)
}
