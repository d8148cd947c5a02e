package models

import "time"

type ContactMessage struct {
	ID string `gorm:"primaryKey;size:36" json:"id" dynamodbav:"id"`

	Name    string `gorm:"type:text;not null" json:"name" dynamodbav:"name"`
	Email   string `gorm:"type:text;not null" json:"email" dynamodbav:"email"`
	Message string `gorm:"type:text;not null" json:"message" dynamodbav:"message"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at" dynamodbav:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
