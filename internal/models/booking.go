package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id" dynamodbav:"id"`

	ClientName  string `gorm:"type:text;not null" json:"client_name" dynamodbav:"client_name"`
	ClientEmail string `gorm:"type:text;not null" json:"client_email" dynamodbav:"client_email"`
	ClientPhone string `gorm:"type:text;not null" json:"client_phone" dynamodbav:"client_phone"`

	ServiceType string `gorm:"size:30;not null" json:"service_type" dynamodbav:"service_type"`
	BookingDate string `gorm:"type:text;not null;index" json:"booking_date" dynamodbav:"booking_date"`
	BookingTime string `gorm:"type:text;not null" json:"booking_time" dynamodbav:"booking_time"`

	Message *string `gorm:"type:text" json:"message" dynamodbav:"message,omitempty"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status" dynamodbav:"status"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at" dynamodbav:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
