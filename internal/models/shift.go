package models

import "time"

// Shift records an uploaded schedule. Only file metadata is kept.
type Shift struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Date       string    `gorm:"type:varchar(10);not null" json:"date"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileURL    string    `gorm:"type:varchar(512);not null" json:"file_url"`
	UploadedBy string    `gorm:"size:36;not null" json:"uploaded_by"`
	Position   int64     `gorm:"not null;index" json:"-"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
