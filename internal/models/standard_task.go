package models

type StandardTask struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Position int64  `gorm:"not null;index" json:"-"`
}
