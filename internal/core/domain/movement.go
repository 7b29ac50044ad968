package domain

import "fmt"

// MovementDirection tells whether cylinders went to the customer or came back empty.
type MovementDirection string

const (
	Received    MovementDirection = "R"
	EmptyReturn MovementDirection = "E"
)

// IsValid reports whether d is a known direction.
func (d MovementDirection) IsValid() bool {
	return d == Received || d == EmptyReturn
}

// Label returns the human readable name of the direction.
func (d MovementDirection) Label() string {
	switch d {
	case Received:
		return "Received"
	case EmptyReturn:
		return "Empty Return"
	default:
		return string(d)
	}
}

// CylinderMovement is a single received or returned quantity on a document.
type CylinderMovement struct {
	MovementID int64             `json:"movementID"` // Assigned by the store
	DocumentID int64             `json:"documentID"`
	Direction  MovementDirection `json:"direction"`
	Quantity   int               `json:"quantity"` // Always positive
	ItemCode   *string           `json:"itemCode,omitempty"`
}

// Signed returns the movement's effect on holdings.
func (m CylinderMovement) Signed() int {
	if m.Direction == EmptyReturn {
		return -m.Quantity
	}
	return m.Quantity
}

func (m CylinderMovement) String() string {
	return fmt.Sprintf("%s:%d", m.Direction.Label(), m.Quantity)
}

// SumByDirection totals the quantities of a movement set per direction.
func SumByDirection(movements []CylinderMovement) (received, returned int) {
	for _, m := range movements {
		switch m.Direction {
		case Received:
			received += m.Quantity
		case EmptyReturn:
			returned += m.Quantity
		}
	}
	return received, returned
}
