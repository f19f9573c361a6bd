package api

import (
	"regexp"
	"strings"
	"time"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

var (
	regexName   = regexp.MustCompile(`^[A-Za-z]+$`)
	regexEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	regexPhone  = regexp.MustCompile(`^[0-9]{10}$`)
	regexDigits = regexp.MustCompile(`^[0-9]+$`)
	regexIFSC   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	regexPAN    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
)

var allowedGenders = map[string]struct{}{
	"Male": {}, "Female": {}, "Other": {},
}

func validDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

// validateEmployee checks every field rule and collects all violations; rules
// are independent and order-insensitive. Nil optional fields are skipped, a
// present-but-invalid value fails.
func validateEmployee(in dto.EmployeeDTO) []dto.FieldError {
	var out []dto.FieldError

	fail := func(field, message string) {
		out = append(out, dto.FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(in.FirstName) == "" {
		fail("firstName", "First name is required")
	} else if !regexName.MatchString(in.FirstName) {
		fail("firstName", "First name must contain only letters")
	}

	if strings.TrimSpace(in.LastName) == "" {
		fail("lastName", "Last name is required")
	} else if !regexName.MatchString(in.LastName) {
		fail("lastName", "Last name must contain only letters")
	}

	if strings.TrimSpace(in.Email) == "" {
		fail("email", "Email is required")
	} else if !regexEmail.MatchString(in.Email) {
		fail("email", "Invalid email format")
	}

	if in.PhoneNumber != nil && !regexPhone.MatchString(*in.PhoneNumber) {
		fail("phoneNumber", "Phone number must be 10 digits")
	}

	if in.DateOfBirth != nil {
		if t, valid := validDate(*in.DateOfBirth); !valid {
			fail("dateOfBirth", "Invalid date format for date of birth")
		} else if !t.Before(time.Now().Truncate(24 * time.Hour)) {
			fail("dateOfBirth", "Date of birth must be in the past")
		}
	}

	if in.Gender != nil {
		if _, allowed := allowedGenders[*in.Gender]; !allowed {
			fail("gender", "Gender must be Male, Female, or Other")
		}
	}

	if strings.TrimSpace(in.HireDate) == "" {
		fail("hireDate", "Hire date is required")
	} else if _, valid := validDate(in.HireDate); !valid {
		fail("hireDate", "Invalid date format for hire date")
	}

	if in.Salary != nil && *in.Salary <= 0 {
		fail("salary", "Salary must be positive")
	}

	if strings.TrimSpace(in.BankName) == "" {
		fail("bankName", "Bank name is required")
	}

	if strings.TrimSpace(in.BankAccountNumber) == "" {
		fail("bankAccountNumber", "Bank account number is required")
	} else if !regexDigits.MatchString(in.BankAccountNumber) {
		fail("bankAccountNumber", "Bank account number must contain only numbers")
	}

	if in.IFSCCode != nil && !regexIFSC.MatchString(*in.IFSCCode) {
		fail("ifscCode", "Invalid IFSC code format")
	}

	if strings.TrimSpace(in.PANNumber) == "" {
		fail("panNumber", "PAN number is required")
	} else if !regexPAN.MatchString(in.PANNumber) {
		fail("panNumber", "Invalid PAN number format")
	}

	return out
}
