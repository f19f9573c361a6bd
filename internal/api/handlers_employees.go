package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

func pathInt64(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	raw, _ := ctx.UserValue(name).(string)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// @Summary List all freelancers
// @Tags    Employees
// @Produce json
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees [get]
func (s *Service) listEmployees(ctx *fasthttp.RequestCtx) {
	rows, err := s.employees.List(ctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.List: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Get freelancer by id
// @Tags    Employees
// @Produce json
// @Param   id path int true "Employee id"
// @Success 200 {object} dto.EmployeeDTO
// @Failure 404 {object} errorResponse "employee not found"
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/{id} [get]
func (s *Service) getEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := pathInt64(ctx, "id")
	if !valid {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidEmployeeID)
		return
	}

	row, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.GetByID: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, row)
}

// @Summary Register a new freelancer
// @Tags    Employees
// @Accept  json
// @Produce json
// @Param   request body dto.EmployeeDTO true "Freelancer"
// @Success 201 {object} dto.EmployeeDTO
// @Failure 400 {object} validationResponse "every failing field is listed"
// @Failure 409 {object} errorResponse "email, bank account number or PAN already taken"
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees [post]
func (s *Service) createEmployee(ctx *fasthttp.RequestCtx) {
	var req dto.EmployeeDTO

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if fieldErrors := validateEmployee(req); len(fieldErrors) > 0 {
		writeValidationError(ctx, fieldErrors)
		return
	}

	row, err := s.employees.Create(ctx, req)
	if err != nil {
		if errors.Is(err, dto.ErrAlreadyExists) {
			writeError(ctx, fasthttp.StatusConflict, ErrEmployeeAlreadyExists)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.Create: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusCreated, row)
}

// @Summary Update a freelancer (full overwrite)
// @Tags    Employees
// @Accept  json
// @Produce json
// @Param   id path int true "Employee id"
// @Param   request body dto.EmployeeDTO true "Complete record; omitted fields blank out stored values"
// @Success 200 {object} dto.EmployeeDTO
// @Failure 400 {object} validationResponse "every failing field is listed"
// @Failure 404 {object} errorResponse "employee not found"
// @Failure 409 {object} errorResponse "email, bank account number or PAN already taken"
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/{id} [put]
func (s *Service) updateEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := pathInt64(ctx, "id")
	if !valid {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidEmployeeID)
		return
	}

	var req dto.EmployeeDTO

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	if fieldErrors := validateEmployee(req); len(fieldErrors) > 0 {
		writeValidationError(ctx, fieldErrors)
		return
	}

	row, err := s.employees.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
			return
		}
		if errors.Is(err, dto.ErrAlreadyExists) {
			writeError(ctx, fasthttp.StatusConflict, ErrEmployeeAlreadyExists)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.Update: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, row)
}

// @Summary Delete a freelancer
// @Tags    Employees
// @Param   id path int true "Employee id"
// @Success 204 "deleted"
// @Failure 404 {object} errorResponse "employee not found"
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/{id} [delete]
func (s *Service) deleteEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := pathInt64(ctx, "id")
	if !valid {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidEmployeeID)
		return
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.Delete: %w", err))
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// @Summary List freelancers reporting to a manager
// @Tags    Lookups
// @Produce json
// @Param   managerId path int true "Manager id"
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/manager/{managerId} [get]
func (s *Service) listByManager(ctx *fasthttp.RequestCtx) {
	managerID, valid := pathInt64(ctx, "managerId")
	if !valid {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidManagerID)
		return
	}

	rows, err := s.employees.ListByManager(ctx, managerID)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.ListByManager: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary List freelancers of a company
// @Tags    Lookups
// @Produce json
// @Param   companyId path int true "Company id"
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/company/{companyId} [get]
func (s *Service) listByCompany(ctx *fasthttp.RequestCtx) {
	companyID, valid := pathInt64(ctx, "companyId")
	if !valid {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidCompanyID)
		return
	}

	rows, err := s.employees.ListByCompany(ctx, int(companyID))
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.ListByCompany: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Find freelancers by domain (exact, case-sensitive)
// @Tags    Lookups
// @Produce json
// @Param   domain path string true "Domain, e.g. Web Development"
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/freelancers/domain/{domain} [get]
func (s *Service) listByDomain(ctx *fasthttp.RequestCtx) {
	domain, _ := ctx.UserValue("domain").(string)

	rows, err := s.employees.ListByDomain(ctx, domain)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.ListByDomain: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Find freelancers by skill (substring, case-insensitive)
// @Tags    Lookups
// @Produce json
// @Param   skills path string true "Skill fragment, e.g. script"
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} errorResponse "store unavailable"
// @Router  /api/employees/freelancers/skills/{skills} [get]
func (s *Service) listBySkill(ctx *fasthttp.RequestCtx) {
	fragment, _ := ctx.UserValue("skills").(string)

	rows, err := s.employees.ListBySkill(ctx, fragment)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employees.ListBySkill: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rows)
}

// @Summary Service health probe
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}
