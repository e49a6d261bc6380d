package entity

// PartyType identifies what kind of identity a party row stands for
type PartyType string

const (
	PartyTypePerson PartyType = "PERSON"
)

// Party is the abstract identity row shared by patients and users.
// It is written once and never updated.
type Party struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PartyType PartyType `gorm:"column:party_type;type:varchar(20);not null" json:"party_type"`
}

func (Party) TableName() string {
	return "parties"
}
