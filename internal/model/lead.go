package model

// Lead is a prospective customer's contact record. It is write-once.
type Lead struct {
	BaseModel
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Email  string `gorm:"type:varchar(255);not null" json:"email"`
	Phone  string `gorm:"type:varchar(50)" json:"phone"`
	Intent string `gorm:"type:text" json:"intent"`
}

func (Lead) TableName() string {
	return "leads"
}
