package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type mockRepo struct {
	byID   map[int64]dto.Employee
	nextID int64

	created []dto.Employee
	updated []dto.Employee
	deleted []int64

	createErr error
	updateErr error
	listRows  []dto.Employee
	listErr   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: map[int64]dto.Employee{}, nextID: 1}
}

func (m *mockRepo) List(context.Context) ([]dto.Employee, error) { return m.listRows, m.listErr }

func (m *mockRepo) GetByID(_ context.Context, id int64) (*dto.Employee, error) {
	e, found := m.byID[id]
	if !found {
		return nil, dto.ErrNotFound
	}
	return &e, nil
}

func (m *mockRepo) Create(_ context.Context, e dto.Employee) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}

	id := m.nextID
	m.nextID++

	e.EmployeeID = id
	e.CreatedAt = "2024-01-01T00:00:00+00"
	e.UpdatedAt = "2024-01-01T00:00:00+00"
	if e.Status == "" {
		e.Status = "Active"
	}
	m.byID[id] = e
	m.created = append(m.created, e)

	return id, nil
}

func (m *mockRepo) Update(_ context.Context, e dto.Employee) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, found := m.byID[e.EmployeeID]; !found {
		return dto.ErrNotFound
	}

	e.UpdatedAt = "2024-02-01T00:00:00+00"
	m.byID[e.EmployeeID] = e
	m.updated = append(m.updated, e)

	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, found := m.byID[id]; !found {
		return dto.ErrNotFound
	}

	delete(m.byID, id)
	m.deleted = append(m.deleted, id)

	return nil
}

func (m *mockRepo) ListByManager(context.Context, int64) ([]dto.Employee, error) {
	return m.listRows, m.listErr
}
func (m *mockRepo) ListByCompany(context.Context, int) ([]dto.Employee, error) {
	return m.listRows, m.listErr
}
func (m *mockRepo) ListByDomain(context.Context, string) ([]dto.Employee, error) {
	return m.listRows, m.listErr
}
func (m *mockRepo) ListBySkill(context.Context, string) ([]dto.Employee, error) {
	return m.listRows, m.listErr
}

type mockProducer struct {
	kinds []string
	err   error
}

func (m *mockProducer) EmployeeCreated(context.Context, dto.EmployeeDTO) error {
	m.kinds = append(m.kinds, "created")
	return m.err
}

func (m *mockProducer) EmployeeUpdated(context.Context, dto.EmployeeDTO) error {
	m.kinds = append(m.kinds, "updated")
	return m.err
}

func (m *mockProducer) EmployeeDeleted(context.Context, int64) error {
	m.kinds = append(m.kinds, "deleted")
	return m.err
}

func newEmployees(repo EmployeeRepository, producer EventProducer) *Employees {
	return NewEmployees(repo, producer, zerolog.Nop())
}

func TestEmployees_GetByID_NotFound(t *testing.T) {
	s := newEmployees(newMockRepo(), nil)

	_, err := s.GetByID(context.Background(), 42)
	if !errors.Is(err, dto.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmployees_Create_ThenGet_EqualModuloServerFields(t *testing.T) {
	repo := newMockRepo()
	s := newEmployees(repo, nil)

	in := toDTO(sampleEmployee())
	in.EmployeeID = 0
	in.SkillsString = nil
	in.CreatedAt = ""
	in.UpdatedAt = ""

	created, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.EmployeeID == 0 {
		t.Fatalf("expected server-assigned id")
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatalf("expected server timestamps, got %+v", created)
	}

	got, err := s.GetByID(context.Background(), created.EmployeeID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got.FirstName != in.FirstName || got.Email != in.Email || got.PANNumber != in.PANNumber {
		t.Fatalf("expected payload fields to survive create, got %+v", got)
	}

	// create does not wire skills: the stored skill set stays empty
	if got.SkillsString != nil {
		t.Fatalf("expected no skillsString after create, got %q", *got.SkillsString)
	}
}

func TestEmployees_Create_Conflict(t *testing.T) {
	repo := newMockRepo()
	repo.createErr = dto.ErrAlreadyExists
	s := newEmployees(repo, nil)

	_, err := s.Create(context.Background(), toDTO(sampleEmployee()))
	if !errors.Is(err, dto.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no record persisted on conflict")
	}
}

func TestEmployees_Update_NotFound(t *testing.T) {
	s := newEmployees(newMockRepo(), nil)

	_, err := s.Update(context.Background(), 42, toDTO(sampleEmployee()))
	if !errors.Is(err, dto.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEmployees_Update_PreservesServerFields(t *testing.T) {
	repo := newMockRepo()
	s := newEmployees(repo, nil)

	stored := sampleEmployee()
	stored.EmployeeID = 5
	stored.CreatedAt = "2023-01-15T10:00:00+00"
	repo.byID[5] = stored

	payload := toDTO(stored)
	payload.EmployeeID = 999 // must be ignored
	payload.FirstName = "Johnny"
	payload.PhoneNumber = nil // omitted fields blank out stored values

	out, err := s.Update(context.Background(), 5, payload)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if out.EmployeeID != 5 {
		t.Fatalf("expected id 5, got %d", out.EmployeeID)
	}
	if out.FirstName != "Johnny" {
		t.Fatalf("expected first name overwritten, got %q", out.FirstName)
	}
	if out.PhoneNumber != nil {
		t.Fatalf("expected phone blanked out, got %q", *out.PhoneNumber)
	}

	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
	if repo.updated[0].CreatedAt != stored.CreatedAt {
		t.Fatalf("expected createdAt preserved, got %q", repo.updated[0].CreatedAt)
	}
}

func TestEmployees_Delete(t *testing.T) {
	repo := newMockRepo()
	repo.byID[3] = sampleEmployee()
	producer := &mockProducer{}
	s := newEmployees(repo, producer)

	if err := s.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 3 {
		t.Fatalf("expected delete of id 3, got %v", repo.deleted)
	}
	if len(producer.kinds) != 1 || producer.kinds[0] != "deleted" {
		t.Fatalf("expected deleted event, got %v", producer.kinds)
	}

	if err := s.Delete(context.Background(), 3); !errors.Is(err, dto.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestEmployees_List_MapsSkillsString(t *testing.T) {
	repo := newMockRepo()
	repo.listRows = []dto.Employee{sampleEmployee()}
	s := newEmployees(repo, nil)

	rows, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].SkillsString == nil || *rows[0].SkillsString != "JavaScript, React" {
		t.Fatalf("expected joined skillsString, got %+v", rows[0])
	}
}

func TestEmployees_List_EmptyStoreYieldsEmptySequence(t *testing.T) {
	s := newEmployees(newMockRepo(), nil)

	rows, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", rows)
	}
}

func TestEmployees_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := newMockRepo()
	producer := &mockProducer{err: errors.New("broker down")}
	s := newEmployees(repo, producer)

	in := toDTO(sampleEmployee())
	in.EmployeeID = 0

	if _, err := s.Create(context.Background(), in); err != nil {
		t.Fatalf("expected create to succeed despite publish failure, got %v", err)
	}
	if len(producer.kinds) != 1 || producer.kinds[0] != "created" {
		t.Fatalf("expected created event attempt, got %v", producer.kinds)
	}
}
