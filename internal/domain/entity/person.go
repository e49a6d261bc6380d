package entity

import "time"

// Person extends a Party with demographic and contact details.
// Its ID is the Party ID, never a value of its own.
type Person struct {
	ID          int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName   string     `gorm:"column:first_name" json:"first_name"`
	LastName    string     `gorm:"column:last_name" json:"last_name"`
	NationalID  string     `gorm:"column:national_id" json:"national_id"`
	Address     string     `gorm:"column:address" json:"address"`
	Gender      string     `gorm:"column:gender" json:"gender"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	PhoneNumber string     `gorm:"column:phone_number" json:"phone_number"`
}

func (Person) TableName() string {
	return "persons"
}
