package event

import "time"

type Type string

const (
	ExpenseCreated     Type = "expense.created"
	ExpenseDeleted     Type = "expense.deleted"
	CategoryCreated    Type = "category.created"
	PaymentTypeCreated Type = "payment_type.created"
)

// Change describes a write this client performed against the backend.
type Change struct {
	Type     Type      `json:"type"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}
