package domain

import (
	"errors"
	"time"
)

// ItemStatus represents the completion state of a checklist item.
type ItemStatus string

const (
	StatusPending   ItemStatus = "pending"
	StatusCompleted ItemStatus = "completed"
)

// ListStatusPending is the status every new list starts in.
const ListStatusPending = "pending"

var ErrListNotFound = errors.New("list not found")
var ErrItemNotFound = errors.New("item not found")
var ErrTitleRequired = errors.New("title required")
var ErrDescriptionRequired = errors.New("description required")
var ErrInvalidItemStatus = errors.New("invalid item status")

// Valid reports whether s is a known item status.
func (s ItemStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// List is a named collection of checklist items. Lists are visible to every
// authenticated user; there is no per-account ownership column.
type List struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Title     string    `json:"title" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (List) TableName() string { return "list" }

// Item is a single checklist entry. Every item belongs to exactly one list;
// the list_id foreign key is enforced at the store level.
type Item struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	ListID      string     `json:"list_id" gorm:"size:36;index;not null"`
	Description string     `json:"description" gorm:"not null"`
	Status      ItemStatus `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	List List `json:"-" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

func (Item) TableName() string { return "items" }
