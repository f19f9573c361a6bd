// Package seed populates an empty store with the fixed skill catalog and five
// example freelancers. It writes through the repositories directly, bypassing
// request validation.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type EmployeeRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, e dto.Employee) (int64, error)
	SetSkills(ctx context.Context, employeeID int64, skillIDs []int64) error
}

type SkillRepository interface {
	Create(ctx context.Context, s dto.Skill) (int64, error)
	GetByName(ctx context.Context, skillName string) (*dto.Skill, error)
}

type Seeder struct {
	employees EmployeeRepository
	skills    SkillRepository
	log       zerolog.Logger
}

func NewSeeder(employees EmployeeRepository, skills SkillRepository, log zerolog.Logger) *Seeder {
	return &Seeder{
		employees: employees,
		skills:    skills,
		log:       log.With().Str("component", "seeder").Logger(),
	}
}

// Run seeds only when the employee table is empty.
func (s *Seeder) Run(ctx context.Context) error {
	n, err := s.employees.Count(ctx)
	if err != nil {
		return fmt.Errorf("employees.Count: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int64("employees", n).Msg("store not empty, seeding skipped")
		return nil
	}

	if err := s.createSkills(ctx); err != nil {
		return err
	}

	for _, example := range exampleEmployees() {
		employeeID, err := s.employees.Create(ctx, example.record)
		if err != nil {
			return fmt.Errorf("employees.Create %s: %w", example.record.Email, err)
		}

		skillIDs, err := s.resolveSkills(ctx, example.skills)
		if err != nil {
			return err
		}

		if err := s.employees.SetSkills(ctx, employeeID, skillIDs); err != nil {
			return fmt.Errorf("employees.SetSkills: %w", err)
		}
	}

	s.log.Info().Msg("seed data inserted")

	return nil
}

func (s *Seeder) createSkills(ctx context.Context) error {
	for _, entry := range skillCatalog {
		_, err := s.skills.Create(ctx, dto.Skill{SkillName: entry[0], Category: strPtr(entry[1])})
		if err != nil && !errors.Is(err, dto.ErrAlreadyExists) {
			return fmt.Errorf("skills.Create %s: %w", entry[0], err)
		}
	}

	return nil
}

// resolveSkills looks every name up in the catalog; unknown names are
// silently skipped, the seeder never invents a skill on the fly.
func (s *Seeder) resolveSkills(ctx context.Context, names []string) ([]int64, error) {
	var out []int64
	for _, name := range names {
		skill, err := s.skills.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				continue
			}

			return nil, fmt.Errorf("skills.GetByName %s: %w", name, err)
		}

		out = append(out, skill.SkillID)
	}

	return out, nil
}
