package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"
	domainRepo "meddesk-hms/internal/domain/repository"

	"gorm.io/gorm"
)

type personRepository struct{}

func NewPersonRepository() domainRepo.PersonRepository {
	return &personRepository{}
}

// Create inserts the person under the ID already set on it (the party ID)
func (r *personRepository) Create(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	return db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) UpdateByID(ctx context.Context, db *gorm.DB, id int64, person *entity.Person) (int64, error) {
	// A map keeps empty strings and a nil birth date in the SET list.
	result := db.WithContext(ctx).
		Model(&entity.Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"first_name":    person.FirstName,
			"last_name":     person.LastName,
			"national_id":   person.NationalID,
			"address":       person.Address,
			"gender":        person.Gender,
			"date_of_birth": person.DateOfBirth,
			"phone_number":  person.PhoneNumber,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
