package entity

// OrderStatus is the integer lifecycle code stored on an order.
// Progress is checked by comparison, there is no transition table.
type OrderStatus int

const (
	StatusPending    OrderStatus = 0
	StatusInProgress OrderStatus = 1
	StatusReady      OrderStatus = 2
	StatusCompleted  OrderStatus = 3
	StatusCancelled  OrderStatus = 4
)

func (s OrderStatus) Known() bool { return s >= StatusPending && s <= StatusCancelled }

func (s OrderStatus) Terminal() bool { return s == StatusCompleted || s == StatusCancelled }

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in-progress"
	case StatusReady:
		return "ready"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}
