package models

import "time"

// EventLog is an append-only audit record. Rows are created as a side
// effect of every state-changing operation on an application and are never
// updated or deleted.
type EventLog struct {
	EventID       int       `gorm:"primaryKey;column:event_id" json:"event_id"`
	ApplicationID int       `gorm:"column:application_id;index" json:"application_id"`
	ActorID       int       `gorm:"column:actor_id" json:"actor_id"`
	Action        string    `gorm:"column:action" json:"action"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	Actor       *User        `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	Application *Application `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
}

func (EventLog) TableName() string {
	return "event_logs"
}
