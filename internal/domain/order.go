package domain

import "time"

type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "SUBMITTED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// statusLabels is the single place a status gets a display meaning.
var statusLabels = map[OrderStatus]string{
	OrderStatusSubmitted: "preparing",
	OrderStatusShipping:  "in transit",
	OrderStatusCompleted: "done",
	OrderStatusCancelled: "cancelled",
}

// Label returns the customer-facing name of the status, or the raw value for
// anything unknown.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is the frozen result of a checkout. Details is an independent copy of
// the cart lines at checkout time; later cart mutations never touch it, and
// Total is computed once at creation and never recomputed.
type Order struct {
	ID        string      `bson:"id"`
	UserID    string      `bson:"user_id"`
	Name      string      `bson:"name"`
	Email     string      `bson:"email"`
	Phone     string      `bson:"phone"`
	Message   string      `bson:"msg"`
	Ship      string      `bson:"ship"`
	Payment   string      `bson:"payment"`
	Total     float64     `bson:"total"`
	Status    OrderStatus `bson:"status"`
	Details   []CartLine  `bson:"details"`
	IsDeleted bool        `bson:"is_deleted"`
	CreatedAt time.Time   `bson:"created_at"`
}
