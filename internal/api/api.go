package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/DilipRavikumar/freelance-project/internal/dto"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// @title           Freelance Project — Employee Service
// @version         1.0
// @description     CRUD API for freelancer records and their skills: create, read, update, delete, plus lookups by manager, company, domain and skill.
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeDTO, error)
	GetByID(ctx context.Context, employeeID int64) (*dto.EmployeeDTO, error)
	Create(ctx context.Context, in dto.EmployeeDTO) (*dto.EmployeeDTO, error)
	Update(ctx context.Context, employeeID int64, in dto.EmployeeDTO) (*dto.EmployeeDTO, error)
	Delete(ctx context.Context, employeeID int64) error
	ListByManager(ctx context.Context, managerID int64) ([]dto.EmployeeDTO, error)
	ListByCompany(ctx context.Context, companyID int) ([]dto.EmployeeDTO, error)
	ListByDomain(ctx context.Context, domain string) ([]dto.EmployeeDTO, error)
	ListBySkill(ctx context.Context, fragment string) ([]dto.EmployeeDTO, error)
}

type ServiceDeps struct {
	Port   int
	Origin string

	Employees EmployeeService
}

type Service struct {
	r      *router.Router
	server *fasthttp.Server
	port   int
	origin string

	employees EmployeeService
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:         rt,
		port:      d.Port,
		origin:    d.Origin,
		employees: d.Employees,
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            RecoveryMiddleware(LoggingMiddleware(CORS(s.origin, s.r.Handler))),
		Name:               "employee-api",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	return s
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting employee API")

	emergencyShutdown := make(chan error)
	go func() {
		err := s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
		emergencyShutdown <- err
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Employees
	s.r.GET("/api/employees", s.listEmployees)
	s.r.GET("/api/employees/{id}", s.getEmployee)
	s.r.POST("/api/employees", s.createEmployee)
	s.r.PUT("/api/employees/{id}", s.updateEmployee)
	s.r.DELETE("/api/employees/{id}", s.deleteEmployee)

	// Filtered lookups
	s.r.GET("/api/employees/manager/{managerId}", s.listByManager)
	s.r.GET("/api/employees/company/{companyId}", s.listByCompany)
	s.r.GET("/api/employees/freelancers/domain/{domain}", s.listByDomain)
	s.r.GET("/api/employees/freelancers/skills/{skills}", s.listBySkill)

	// Health
	s.r.GET("/health", s.healthHandler)
}
