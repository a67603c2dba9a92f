package models

import (
	"fmt"
	"time"
)

const (
	DIRECT_SOURCE   = "direct"
	PARTNER_SOURCE  = "partner"
	INTERNAL_SOURCE = "internal"
)

var (
	// SignupSources are the only accepted values for a professional's 'source'
	SignupSources = []string{DIRECT_SOURCE, PARTNER_SOURCE, INTERNAL_SOURCE}

	// Fields a bulk upsert is allowed to overwrite on an existing record.
	// 'id' & 'created_at' are assigned once on create & never touched again.
	updatableFields = []string{
		"full_name",
		"email",
		"phone",
		"company_name",
		"job_title",
		"source",
	}
)

// Professional is a single sign-up record. Email & phone are pointers so
// an absent value is stored as NULL & never collides on the unique indexes.
type Professional struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	FullName    string    `json:"full_name" gorm:"size:255;not null"`
	Email       *string   `json:"email" gorm:"size:254;unique"`
	Phone       *string   `json:"phone" gorm:"size:20;unique"`
	CompanyName string    `json:"company_name" gorm:"size:255"`
	JobTitle    string    `json:"job_title" gorm:"size:255"`
	Source      string    `json:"source" gorm:"size:10;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// Update overwrites only the fields present in 'data', restricted to
// updatableFields, in a single write.
func (professional *Professional) Update(data map[string]interface{}) error {
	return db.Model(&Professional{}).
		Where("id = ?", professional.ID).
		Select(updatableFields).
		Updates(data).Error
}

// Reload refreshes the record from the db, e.g. after a partial update.
func (professional *Professional) Reload() error {
	return db.First(professional, professional.ID).Error
}

func FindProfessionalBy(field string, value interface{}) (*Professional, error) {
	professional := Professional{}
	err := db.First(&professional, fmt.Sprintf("%v = ?", field), value).Error
	if err != nil {
		return nil, err
	}

	return &professional, nil
}

// AllProfessionals returns every record newest-first. A non-empty 'source'
// narrows the result by exact match - an unknown value simply matches nothing.
func AllProfessionals(source string) ([]Professional, error) {
	professionals := []Professional{}

	query := db.Order("created_at DESC, id DESC")
	if source != "" {
		query = query.Where("source = ?", source)
	}

	err := query.Find(&professionals).Error
	if err != nil {
		return nil, err
	}

	return professionals, nil
}

func CreateProfessional(professional *Professional) error {
	return db.Create(professional).Error
}
