package models

import "time"

// Appointment occupies one slot: the (barber, date, time) triple. The
// composite unique index is the correctness backstop for double-booking;
// the pre-insert conflict check only exists for a friendlier error path.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"not null" json:"user_id"`
	BarberID  uint `gorm:"not null;uniqueIndex:idx_barber_slot" json:"barber_id"`
	ServiceID uint `gorm:"not null" json:"service_id"`

	// AppointmentDate is pinned to 12:00 UTC of the calendar day so a
	// timezone shift can never move it across a day boundary.
	AppointmentDate time.Time `gorm:"not null;uniqueIndex:idx_barber_slot" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:10;not null;uniqueIndex:idx_barber_slot" json:"appointment_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Client contact is denormalized at booking time.
	ClientName  string `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	Notes       string `gorm:"type:text" json:"notes"`

	NoShowReason string `gorm:"type:text" json:"no_show_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
