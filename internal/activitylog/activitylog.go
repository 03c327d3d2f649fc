package activitylog

import "time"

// Entry is one audited action. Entries are written by event subscribers, so
// a failed write never surfaces to the request that caused it.
type Entry struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Action     string    `json:"action" gorm:"column:action;not null;index"`
	ActorID    int64     `json:"actor_id" gorm:"column:actor_id"`
	EntityType string    `json:"entity_type" gorm:"column:entity_type"`
	EntityID   int64     `json:"entity_id" gorm:"column:entity_id"`
	Details    string    `json:"details,omitempty" gorm:"column:details"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Entry) TableName() string {
	return "activity_logs"
}
