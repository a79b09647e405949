package domain

import "time"

const (
	ActionListCreated = "list_created"
	ActionListUpdated = "list_updated"
	ActionListDeleted = "list_deleted"
	ActionItemCreated = "item_created"
	ActionItemUpdated = "item_updated"
	ActionItemDeleted = "item_deleted"
)

// Activity records a single mutation against a list or one of its items.
// Rows are written asynchronously; losing one never fails the request that
// produced it.
type Activity struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ListID    string    `json:"list_id" gorm:"size:36;index;not null"`
	ItemID    string    `json:"item_id,omitempty" gorm:"size:36"`
	Username  string    `json:"username"`
	Action    string    `json:"action" gorm:"not null"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (Activity) TableName() string { return "activity_log" }
