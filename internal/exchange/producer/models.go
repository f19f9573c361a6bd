package producer

import (
	"time"

	"github.com/google/uuid"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

const (
	kindCreated = "employee.created"
	kindUpdated = "employee.updated"
	kindDeleted = "employee.deleted"
)

// Envelope wraps every outbound employee event.
type Envelope[T any] struct {
	Kind       string    `json:"kind"` // employee.created | employee.updated | employee.deleted
	MessageID  uuid.UUID `json:"message_id"`
	EmployeeID int64     `json:"employee_id"`
	Payload    T         `json:"payload"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
}

// EmployeePayload carries the wire record of the employee the event is about.
type EmployeePayload struct {
	Employee dto.EmployeeDTO `json:"employee"`
}

// DeletedPayload carries only the id; the record is gone.
type DeletedPayload struct {
	EmployeeID int64 `json:"employee_id"`
}
