package service

import (
	"strings"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

// toDTO maps a persisted record to its wire form. Skill names arrive sorted
// from the store and are joined into skillsString; an empty skill set leaves
// the field unset.
func toDTO(e dto.Employee) dto.EmployeeDTO {
	out := dto.EmployeeDTO{
		EmployeeID:        e.EmployeeID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Email:             e.Email,
		PhoneNumber:       e.PhoneNumber,
		DateOfBirth:       e.DateOfBirth,
		Gender:            e.Gender,
		DesignationID:     e.DesignationID,
		HireDate:          e.HireDate,
		Salary:            e.Salary,
		ManagerID:         e.ManagerID,
		CompanyID:         e.CompanyID,
		BankName:          e.BankName,
		BankAccountNumber: e.BankAccountNumber,
		IFSCCode:          e.IFSCCode,
		PANNumber:         e.PANNumber,
		PhotoURL:          e.PhotoURL,
		LinkedinURL:       e.LinkedinURL,
		GithubURL:         e.GithubURL,
		Domain:            e.Domain,
		Status:            e.Status,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}

	if len(e.Skills) > 0 {
		joined := strings.Join(e.Skills, ", ")
		out.SkillsString = &joined
	}

	return out
}

func toDTOs(rows []dto.Employee) []dto.EmployeeDTO {
	out := make([]dto.EmployeeDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}

	return out
}

// fromDTO builds a fresh persisted record from a create payload. EmployeeID,
// CreatedAt and UpdatedAt are server-assigned and never taken from the wire;
// the skill set is not wired in on create, skills are attached only by the
// seeder.
func fromDTO(in dto.EmployeeDTO) dto.Employee {
	return dto.Employee{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		PhoneNumber:       in.PhoneNumber,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		DesignationID:     in.DesignationID,
		HireDate:          in.HireDate,
		Salary:            in.Salary,
		ManagerID:         in.ManagerID,
		CompanyID:         in.CompanyID,
		BankName:          in.BankName,
		BankAccountNumber: in.BankAccountNumber,
		IFSCCode:          in.IFSCCode,
		PANNumber:         in.PANNumber,
		PhotoURL:          in.PhotoURL,
		LinkedinURL:       in.LinkedinURL,
		GithubURL:         in.GithubURL,
		Domain:            in.Domain,
		Status:            in.Status,
	}
}

// applyUpdate overwrites every caller-settable field of the stored record
// with the payload, including fields the caller omitted. Exactly EmployeeID,
// CreatedAt and UpdatedAt are preserved (the store refreshes UpdatedAt on
// write); the skill set is untouched by updates.
func applyUpdate(existing dto.Employee, in dto.EmployeeDTO) dto.Employee {
	merged := fromDTO(in)

	merged.EmployeeID = existing.EmployeeID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = existing.UpdatedAt
	merged.Skills = existing.Skills

	return merged
}
