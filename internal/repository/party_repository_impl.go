package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"
	domainRepo "meddesk-hms/internal/domain/repository"

	"gorm.io/gorm"
)

type partyRepository struct{}

func NewPartyRepository() domainRepo.PartyRepository {
	return &partyRepository{}
}

// Create inserts the party and fills party.ID with the generated key
func (r *partyRepository) Create(ctx context.Context, db *gorm.DB, party *entity.Party) error {
	return db.WithContext(ctx).Create(party).Error
}
