package dto

// EmployeeDTO is the wire representation of an employee. Skill names are
// denormalized into SkillsString ("JavaScript, React"); the field is derived
// and ignored on input. CreatedAt/UpdatedAt are server timestamps, also
// ignored on input.
type EmployeeDTO struct {
	EmployeeID        int64    `json:"employeeId,omitempty" example:"1"`
	FirstName         string   `json:"firstName" example:"John"`
	LastName          string   `json:"lastName" example:"Doe"`
	Email             string   `json:"email" example:"john.doe@freelance.com"`
	PhoneNumber       *string  `json:"phoneNumber,omitempty" example:"9876543210"`
	DateOfBirth       *string  `json:"dateOfBirth,omitempty" example:"1990-05-15"` // YYYY-MM-DD
	Gender            *string  `json:"gender,omitempty" example:"Male"`            // Male | Female | Other
	DesignationID     *int     `json:"designationId,omitempty" example:"1"`
	HireDate          string   `json:"hireDate" example:"2023-01-15"` // YYYY-MM-DD
	Salary            *float64 `json:"salary,omitempty" example:"75000"`
	ManagerID         *int64   `json:"managerId,omitempty" example:"1"`
	CompanyID         *int     `json:"companyId,omitempty" example:"1"`
	BankName          string   `json:"bankName" example:"HDFC Bank"`
	BankAccountNumber string   `json:"bankAccountNumber" example:"12345678901"`
	IFSCCode          *string  `json:"ifscCode,omitempty" example:"HDFC0001234"`
	PANNumber         string   `json:"panNumber" example:"ABCDE1234F"`
	PhotoURL          *string  `json:"photoUrl,omitempty"`
	LinkedinURL       *string  `json:"linkedinUrl,omitempty" example:"https://linkedin.com/in/johndoe"`
	GithubURL         *string  `json:"githubUrl,omitempty" example:"https://github.com/johndoe"`
	SkillsString      *string  `json:"skillsString,omitempty" example:"JavaScript, React"`
	Domain            *string  `json:"domain,omitempty" example:"Web Development"`
	Status            string   `json:"status,omitempty" example:"Active"` // Active | Inactive
	CreatedAt         string   `json:"createdAt,omitempty"`
	UpdatedAt         string   `json:"updatedAt,omitempty"`
}

// Employee is the persisted representation. Skills holds the associated skill
// names, loaded eagerly and sorted by the store.
type Employee struct {
	EmployeeID        int64
	FirstName         string
	LastName          string
	Email             string
	PhoneNumber       *string
	DateOfBirth       *string
	Gender            *string
	DesignationID     *int
	HireDate          string
	Salary            *float64
	ManagerID         *int64
	CompanyID         *int
	BankName          string
	BankAccountNumber string
	IFSCCode          *string
	PANNumber         string
	PhotoURL          *string
	LinkedinURL       *string
	GithubURL         *string
	Domain            *string
	Status            string
	Skills            []string
	CreatedAt         string
	UpdatedAt         string
}

// Skill is a catalog entry; names are unique. Skills are created by the
// seeder and never updated or deleted through the API.
type Skill struct {
	SkillID   int64   `json:"skillId"`
	SkillName string  `json:"skillName"`
	Category  *string `json:"category,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
