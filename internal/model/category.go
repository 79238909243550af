package model

// CategoryType is the fixed classification a note belongs to.
type CategoryType string

const (
	CategoryPersonal CategoryType = "personal"
	CategoryStudy    CategoryType = "study"
	CategoryWork     CategoryType = "work"
	CategoryHome     CategoryType = "home"
	CategoryHealth   CategoryType = "health"
	CategoryIdea     CategoryType = "idea"
	CategoryOther    CategoryType = "other"
)

// CategoryTypes lists every category type in seeding order, so personal
// always receives id 1 on a fresh database.
var CategoryTypes = []CategoryType{
	CategoryPersonal,
	CategoryStudy,
	CategoryWork,
	CategoryHome,
	CategoryHealth,
	CategoryIdea,
	CategoryOther,
}

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	for _, known := range CategoryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Category groups notes. Rows are a lookup table seeded at startup.
type Category struct {
	ID    uint         `gorm:"primaryKey" json:"id"`
	Type  CategoryType `gorm:"size:16;not null;default:personal;uniqueIndex" json:"type"`
	Notes []Note       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
