package seed

import (
	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

var skillCatalog = [][2]string{
	{"JavaScript", "Programming"},
	{"React", "Frontend"},
	{"Node.js", "Backend"},
	{"MongoDB", "Database"},
	{"Python", "Programming"},
	{"Machine Learning", "AI/ML"},
	{"TensorFlow", "AI/ML"},
	{"Pandas", "Data Analysis"},
	{"Flutter", "Mobile"},
	{"Dart", "Programming"},
	{"Firebase", "Backend"},
	{"Android", "Mobile"},
	{"iOS", "Mobile"},
	{"Figma", "Design"},
	{"Adobe XD", "Design"},
	{"Sketch", "Design"},
	{"Prototyping", "Design"},
	{"User Research", "UX"},
	{"Docker", "DevOps"},
	{"Kubernetes", "DevOps"},
	{"AWS", "Cloud"},
	{"Jenkins", "CI/CD"},
	{"Terraform", "Infrastructure"},
}

type exampleEmployee struct {
	record dto.Employee
	skills []string
}

func exampleEmployees() []exampleEmployee {
	return []exampleEmployee{
		{
			record: dto.Employee{
				FirstName:         "John",
				LastName:          "Doe",
				Email:             "john.doe@freelance.com",
				PhoneNumber:       strPtr("9876543210"),
				DateOfBirth:       strPtr("1990-05-15"),
				Gender:            strPtr("Male"),
				DesignationID:     intPtr(1),
				HireDate:          "2023-01-15",
				Salary:            f64Ptr(75000),
				CompanyID:         intPtr(1),
				BankName:          "HDFC Bank",
				BankAccountNumber: "12345678901",
				IFSCCode:          strPtr("HDFC0001234"),
				PANNumber:         "ABCDE1234F",
				LinkedinURL:       strPtr("https://linkedin.com/in/johndoe"),
				GithubURL:         strPtr("https://github.com/johndoe"),
				Domain:            strPtr("Web Development"),
				Status:            "Active",
			},
			skills: []string{"JavaScript", "React", "Node.js", "MongoDB"},
		},
		{
			record: dto.Employee{
				FirstName:         "Jane",
				LastName:          "Smith",
				Email:             "jane.smith@freelance.com",
				PhoneNumber:       strPtr("9876543211"),
				DateOfBirth:       strPtr("1988-08-22"),
				Gender:            strPtr("Female"),
				DesignationID:     intPtr(2),
				HireDate:          "2022-06-10",
				Salary:            f64Ptr(85000),
				ManagerID:         int64Ptr(1),
				CompanyID:         intPtr(1),
				BankName:          "SBI",
				BankAccountNumber: "98765432101",
				IFSCCode:          strPtr("SBIN0005678"),
				PANNumber:         "FGHIJ5678K",
				LinkedinURL:       strPtr("https://linkedin.com/in/janesmith"),
				GithubURL:         strPtr("https://github.com/janesmith"),
				Domain:            strPtr("Data Science"),
				Status:            "Active",
			},
			skills: []string{"Python", "Machine Learning", "TensorFlow", "Pandas"},
		},
		{
			record: dto.Employee{
				FirstName:         "Mike",
				LastName:          "Johnson",
				Email:             "mike.johnson@freelance.com",
				PhoneNumber:       strPtr("9876543212"),
				DateOfBirth:       strPtr("1992-03-10"),
				Gender:            strPtr("Male"),
				DesignationID:     intPtr(3),
				HireDate:          "2023-03-20",
				Salary:            f64Ptr(65000),
				CompanyID:         intPtr(1),
				BankName:          "ICICI Bank",
				BankAccountNumber: "11223344556",
				IFSCCode:          strPtr("ICIC0001122"),
				PANNumber:         "KLMNO9876P",
				LinkedinURL:       strPtr("https://linkedin.com/in/mikejohnson"),
				GithubURL:         strPtr("https://github.com/mikejohnson"),
				Domain:            strPtr("Mobile Development"),
				Status:            "Active",
			},
			skills: []string{"Flutter", "Dart", "Firebase", "Android", "iOS"},
		},
		{
			record: dto.Employee{
				FirstName:         "Sarah",
				LastName:          "Wilson",
				Email:             "sarah.wilson@freelance.com",
				PhoneNumber:       strPtr("9876543213"),
				DateOfBirth:       strPtr("1991-07-25"),
				Gender:            strPtr("Female"),
				DesignationID:     intPtr(4),
				HireDate:          "2023-02-05",
				Salary:            f64Ptr(70000),
				CompanyID:         intPtr(1),
				BankName:          "Axis Bank",
				BankAccountNumber: "55667788990",
				IFSCCode:          strPtr("UTIB0005566"),
				PANNumber:         "QRSTU2345V",
				LinkedinURL:       strPtr("https://linkedin.com/in/sarahwilson"),
				Domain:            strPtr("UI/UX Design"),
				Status:            "Active",
			},
			skills: []string{"Figma", "Adobe XD", "Sketch", "Prototyping", "User Research"},
		},
		{
			record: dto.Employee{
				FirstName:         "David",
				LastName:          "Brown",
				Email:             "david.brown@freelance.com",
				PhoneNumber:       strPtr("9876543214"),
				DateOfBirth:       strPtr("1989-11-12"),
				Gender:            strPtr("Male"),
				DesignationID:     intPtr(5),
				HireDate:          "2022-09-15",
				Salary:            f64Ptr(90000),
				CompanyID:         intPtr(1),
				BankName:          "Kotak Bank",
				BankAccountNumber: "99887766554",
				IFSCCode:          strPtr("KKBK0009988"),
				PANNumber:         "WXYZD6789A",
				LinkedinURL:       strPtr("https://linkedin.com/in/davidbrown"),
				GithubURL:         strPtr("https://github.com/davidbrown"),
				Domain:            strPtr("DevOps"),
				Status:            "Active",
			},
			skills: []string{"Docker", "Kubernetes", "AWS", "Jenkins", "Terraform"},
		},
	}
}

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func int64Ptr(n int64) *int64   { return &n }
func f64Ptr(f float64) *float64 { return &f }
