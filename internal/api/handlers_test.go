package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type mockEmployees struct {
	rows []dto.EmployeeDTO
	one  *dto.EmployeeDTO
	err  error
}

func (m *mockEmployees) List(context.Context) ([]dto.EmployeeDTO, error) { return m.rows, m.err }

func (m *mockEmployees) GetByID(context.Context, int64) (*dto.EmployeeDTO, error) {
	return m.one, m.err
}

func (m *mockEmployees) Create(_ context.Context, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	in.EmployeeID = 1
	return &in, nil
}

func (m *mockEmployees) Update(_ context.Context, id int64, in dto.EmployeeDTO) (*dto.EmployeeDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	in.EmployeeID = id
	return &in, nil
}

func (m *mockEmployees) Delete(context.Context, int64) error { return m.err }

func (m *mockEmployees) ListByManager(context.Context, int64) ([]dto.EmployeeDTO, error) {
	return m.rows, m.err
}
func (m *mockEmployees) ListByCompany(context.Context, int) ([]dto.EmployeeDTO, error) {
	return m.rows, m.err
}
func (m *mockEmployees) ListByDomain(context.Context, string) ([]dto.EmployeeDTO, error) {
	return m.rows, m.err
}
func (m *mockEmployees) ListBySkill(context.Context, string) ([]dto.EmployeeDTO, error) {
	return m.rows, m.err
}

func newTestService(m *mockEmployees) *Service {
	return NewService(ServiceDeps{Port: 0, Origin: "http://localhost:4200", Employees: m})
}

func requestCtx(body string, userValues map[string]string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	if body != "" {
		ctx.Request.SetBody([]byte(body))
	}
	for k, v := range userValues {
		ctx.SetUserValue(k, v)
	}
	return ctx
}

func TestGetEmployee_NotFound(t *testing.T) {
	s := newTestService(&mockEmployees{err: dto.ErrNotFound})

	ctx := requestCtx("", map[string]string{"id": "42"})
	s.getEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func TestGetEmployee_InvalidID(t *testing.T) {
	s := newTestService(&mockEmployees{})

	ctx := requestCtx("", map[string]string{"id": "abc"})
	s.getEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestCreateEmployee_Created(t *testing.T) {
	s := newTestService(&mockEmployees{})

	body, _ := json.Marshal(validEmployee())
	ctx := requestCtx(string(body), nil)
	s.createEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var out dto.EmployeeDTO
	if err := json.Unmarshal(ctx.Response.Body(), &out); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if out.EmployeeID != 1 {
		t.Fatalf("expected assigned id in response, got %+v", out)
	}
}

func TestCreateEmployee_ValidationListsEveryField(t *testing.T) {
	s := newTestService(&mockEmployees{})

	in := validEmployee()
	in.FirstName = "John3"
	in.PANNumber = "abcde1234f"
	body, _ := json.Marshal(in)

	ctx := requestCtx(string(body), nil)
	s.createEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}

	var resp validationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp.Errors)
	}
}

func TestCreateEmployee_Conflict(t *testing.T) {
	s := newTestService(&mockEmployees{err: dto.ErrAlreadyExists})

	body, _ := json.Marshal(validEmployee())
	ctx := requestCtx(string(body), nil)
	s.createEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusConflict {
		t.Fatalf("expected 409, got %d", ctx.Response.StatusCode())
	}
}

func TestCreateEmployee_MalformedJSON(t *testing.T) {
	s := newTestService(&mockEmployees{})

	ctx := requestCtx("{not json", nil)
	s.createEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	s := newTestService(&mockEmployees{err: dto.ErrNotFound})

	body, _ := json.Marshal(validEmployee())
	ctx := requestCtx(string(body), map[string]string{"id": "42"})
	s.updateEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func TestDeleteEmployee_NoContent(t *testing.T) {
	s := newTestService(&mockEmployees{})

	ctx := requestCtx("", map[string]string{"id": "3"})
	s.deleteEmployee(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", ctx.Response.StatusCode())
	}
	if len(ctx.Response.Body()) != 0 {
		t.Fatalf("expected empty body, got %s", ctx.Response.Body())
	}
}

func TestListEmployees_EmptyStore(t *testing.T) {
	s := newTestService(&mockEmployees{rows: []dto.EmployeeDTO{}})

	ctx := requestCtx("", nil)
	s.listEmployees(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if got := strings.TrimSpace(string(ctx.Response.Body())); got != "[]" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestListBySkill_PassesFragment(t *testing.T) {
	row := validEmployee()
	row.EmployeeID = 1
	s := newTestService(&mockEmployees{rows: []dto.EmployeeDTO{row}})

	ctx := requestCtx("", map[string]string{"skills": "script"})
	s.listBySkill(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var rows []dto.EmployeeDTO
	if err := json.Unmarshal(ctx.Response.Body(), &rows); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}
