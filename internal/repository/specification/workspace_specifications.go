package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedByOwner struct {
	OwnerID uuid.UUID
}

func (s OwnedByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}
