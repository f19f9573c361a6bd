// Package service orchestrates the employee store and the wire mapping.
// Validation happens in the HTTP layer; records built here (seeder aside)
// are already well-formed.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]dto.Employee, error)
	GetByID(ctx context.Context, employeeID int64) (*dto.Employee, error)
	Create(ctx context.Context, e dto.Employee) (int64, error)
	Update(ctx context.Context, e dto.Employee) error
	Delete(ctx context.Context, employeeID int64) error
	ListByManager(ctx context.Context, managerID int64) ([]dto.Employee, error)
	ListByCompany(ctx context.Context, companyID int) ([]dto.Employee, error)
	ListByDomain(ctx context.Context, domain string) ([]dto.Employee, error)
	ListBySkill(ctx context.Context, fragment string) ([]dto.Employee, error)
}

// EventProducer publishes employee lifecycle events. Publishing is
// best-effort: a broker failure never fails the originating request.
type EventProducer interface {
	EmployeeCreated(ctx context.Context, e dto.EmployeeDTO) error
	EmployeeUpdated(ctx context.Context, e dto.EmployeeDTO) error
	EmployeeDeleted(ctx context.Context, employeeID int64) error
}

type Employees struct {
	repo     EmployeeRepository
	producer EventProducer
	log      zerolog.Logger
}

// NewEmployees wires the service. producer may be nil when no broker is
// configured.
func NewEmployees(repo EmployeeRepository, producer EventProducer, log zerolog.Logger) *Employees {
	return &Employees{
		repo:     repo,
		producer: producer,
		log:      log.With().Str("component", "employees").Logger(),
	}
}

func (s *Employees) List(ctx context.Context) ([]dto.EmployeeDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return toDTOs(rows), nil
}

func (s *Employees) GetByID(ctx context.Context, employeeID int64) (*dto.EmployeeDTO, error) {
	row, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := toDTO(*row)

	return &out, nil
}

func (s *Employees) Create(ctx context.Context, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	id, err := s.repo.Create(ctx, fromDTO(in))
	if err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	out := toDTO(*row)

	s.publish(func() error { return s.producer.EmployeeCreated(ctx, out) }, "employee.created", id)

	return &out, nil
}

func (s *Employees) Update(ctx context.Context, employeeID int64, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	existing, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, applyUpdate(*existing, in)); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	out := toDTO(*row)

	s.publish(func() error { return s.producer.EmployeeUpdated(ctx, out) }, "employee.updated", employeeID)

	return &out, nil
}

func (s *Employees) Delete(ctx context.Context, employeeID int64) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}

	s.publish(func() error { return s.producer.EmployeeDeleted(ctx, employeeID) }, "employee.deleted", employeeID)

	return nil
}

func (s *Employees) ListByManager(ctx context.Context, managerID int64) ([]dto.EmployeeDTO, error) {
	rows, err := s.repo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByManager: %w", err)
	}

	return toDTOs(rows), nil
}

func (s *Employees) ListByCompany(ctx context.Context, companyID int) ([]dto.EmployeeDTO, error) {
	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByCompany: %w", err)
	}

	return toDTOs(rows), nil
}

func (s *Employees) ListByDomain(ctx context.Context, domain string) ([]dto.EmployeeDTO, error) {
	rows, err := s.repo.ListByDomain(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByDomain: %w", err)
	}

	return toDTOs(rows), nil
}

func (s *Employees) ListBySkill(ctx context.Context, fragment string) ([]dto.EmployeeDTO, error) {
	rows, err := s.repo.ListBySkill(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("repo.ListBySkill: %w", err)
	}

	return toDTOs(rows), nil
}

func (s *Employees) publish(send func() error, kind string, employeeID int64) {
	if s.producer == nil {
		return
	}

	if err := send(); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Int64("employee_id", employeeID).Msg("event publish failed")
	}
}
