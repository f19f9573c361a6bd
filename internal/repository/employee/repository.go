package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

// selectColumns is shared by every read query; skill names are aggregated
// eagerly and sorted, so callers never see lazy associations.
const selectColumns = `
select e.employee_id,
       e.first_name,
       e.last_name,
       e.email,
       e.phone_number,
       to_char(e.date_of_birth,'YYYY-MM-DD'),
       e.gender,
       e.designation_id,
       to_char(e.hire_date,'YYYY-MM-DD'),
       e.salary::float8,
       e.manager_id,
       e.company_id,
       e.bank_name,
       e.bank_account_number,
       e.ifsc_code,
       e.pan_number,
       e.photo_url,
       e.linkedin_url,
       e.github_url,
       e.domain,
       e.status,
       coalesce(array_agg(s.skill_name order by s.skill_name) filter (where s.skill_name is not null), '{}'),
       to_char(e.created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF'),
       to_char(e.updated_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
from employee e
left join employee_skills es on es.employee_id = e.employee_id
left join skills s on s.skill_id = es.skill_id
`

const groupAndOrder = `
group by e.employee_id
order by e.employee_id
`

func (r *Repository) Create(ctx context.Context, e dto.Employee) (int64, error) {
	query := `
insert into employee
  (first_name, last_name, email, phone_number, date_of_birth, gender, designation_id,
   hire_date, salary, manager_id, company_id, bank_name, bank_account_number,
   ifsc_code, pan_number, photo_url, linkedin_url, github_url, domain, status,
   created_at, updated_at)
values
  (@first_name, @last_name, @email, @phone_number, nullif(@date_of_birth,'')::date, @gender, @designation_id,
   @hire_date::date, @salary, @manager_id, @company_id, @bank_name, @bank_account_number,
   @ifsc_code, @pan_number, @photo_url, @linkedin_url, @github_url, @domain,
   coalesce(nullif(@status,''), 'Active'), now(), now())
returning employee_id;
`
	args := pgx.NamedArgs{
		"first_name":          e.FirstName,
		"last_name":           e.LastName,
		"email":               e.Email,
		"phone_number":        e.PhoneNumber,
		"date_of_birth":       strptr(e.DateOfBirth),
		"gender":              e.Gender,
		"designation_id":      e.DesignationID,
		"hire_date":           e.HireDate,
		"salary":              e.Salary,
		"manager_id":          e.ManagerID,
		"company_id":          e.CompanyID,
		"bank_name":           e.BankName,
		"bank_account_number": e.BankAccountNumber,
		"ifsc_code":           e.IFSCCode,
		"pan_number":          e.PANNumber,
		"photo_url":           e.PhotoURL,
		"linkedin_url":        e.LinkedinURL,
		"github_url":          e.GithubURL,
		"domain":              e.Domain,
		"status":              e.Status,
	}

	var id int64
	err := r.pool.QueryRow(ctx, query, args).Scan(&id)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return 0, dto.ErrAlreadyExists
		}

		return 0, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, e dto.Employee) error {
	query := `
update employee set
  first_name          = @first_name,
  last_name           = @last_name,
  email               = @email,
  phone_number        = @phone_number,
  date_of_birth       = nullif(@date_of_birth,'')::date,
  gender              = @gender,
  designation_id      = @designation_id,
  hire_date           = @hire_date::date,
  salary              = @salary,
  manager_id          = @manager_id,
  company_id          = @company_id,
  bank_name           = @bank_name,
  bank_account_number = @bank_account_number,
  ifsc_code           = @ifsc_code,
  pan_number          = @pan_number,
  photo_url           = @photo_url,
  linkedin_url        = @linkedin_url,
  github_url          = @github_url,
  domain              = @domain,
  status              = coalesce(nullif(@status,''), 'Active'),
  updated_at          = now()
where employee_id = @employee_id;
`
	args := pgx.NamedArgs{
		"employee_id":         e.EmployeeID,
		"first_name":          e.FirstName,
		"last_name":           e.LastName,
		"email":               e.Email,
		"phone_number":        e.PhoneNumber,
		"date_of_birth":       strptr(e.DateOfBirth),
		"gender":              e.Gender,
		"designation_id":      e.DesignationID,
		"hire_date":           e.HireDate,
		"salary":              e.Salary,
		"manager_id":          e.ManagerID,
		"company_id":          e.CompanyID,
		"bank_name":           e.BankName,
		"bank_account_number": e.BankAccountNumber,
		"ifsc_code":           e.IFSCCode,
		"pan_number":          e.PANNumber,
		"photo_url":           e.PhotoURL,
		"linkedin_url":        e.LinkedinURL,
		"github_url":          e.GithubURL,
		"domain":              e.Domain,
		"status":              e.Status,
	}

	tag, err := r.pool.Exec(ctx, query, args)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return dto.ErrAlreadyExists
		}

		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

// Delete removes the employee together with its skill associations in one
// transaction.
func (r *Repository) Delete(ctx context.Context, employeeID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `delete from employee_skills where employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("tx.Exec: %w", err)
	}

	tag, err := tx.Exec(ctx, `delete from employee where employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("tx.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, employeeID int64) (*dto.Employee, error) {
	query := selectColumns + `where e.employee_id = $1` + groupAndOrder

	row := r.pool.QueryRow(ctx, query, employeeID)

	out, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return out, nil
}

func (r *Repository) List(ctx context.Context) ([]dto.Employee, error) {
	return r.list(ctx, selectColumns+groupAndOrder)
}

func (r *Repository) ListByManager(ctx context.Context, managerID int64) ([]dto.Employee, error) {
	return r.list(ctx, selectColumns+`where e.manager_id = $1`+groupAndOrder, managerID)
}

func (r *Repository) ListByCompany(ctx context.Context, companyID int) ([]dto.Employee, error) {
	return r.list(ctx, selectColumns+`where e.company_id = $1`+groupAndOrder, companyID)
}

// ListByDomain is an exact, case-sensitive match.
func (r *Repository) ListByDomain(ctx context.Context, domain string) ([]dto.Employee, error) {
	return r.list(ctx, selectColumns+`where e.domain = $1`+groupAndOrder, domain)
}

// ListBySkill matches employees having at least one skill whose name contains
// the fragment, case-insensitive.
func (r *Repository) ListBySkill(ctx context.Context, fragment string) ([]dto.Employee, error) {
	query := selectColumns + `
where exists (
  select 1
  from employee_skills es2
  join skills s2 on s2.skill_id = es2.skill_id
  where es2.employee_id = e.employee_id
    and s2.skill_name ilike '%' || $1 || '%'
)` + groupAndOrder

	return r.list(ctx, query, fragment)
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `select count(*) from employee`).Scan(&n); err != nil {
		return 0, fmt.Errorf("row.Scan: %w", err)
	}

	return n, nil
}

// SetSkills replaces the employee's skill associations with the given skill
// ids. Duplicates in the input collapse onto the (employee_id, skill_id)
// primary key via on conflict do nothing.
func (r *Repository) SetSkills(ctx context.Context, employeeID int64, skillIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `delete from employee_skills where employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("tx.Exec: %w", err)
	}

	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx, `
insert into employee_skills (employee_id, skill_id)
values ($1, $2)
on conflict do nothing;
`, employeeID, skillID)
		if err != nil {
			return fmt.Errorf("tx.Exec: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]dto.Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func scanEmployee(row pgx.Row) (*dto.Employee, error) {
	var out dto.Employee

	err := row.Scan(
		&out.EmployeeID,
		&out.FirstName,
		&out.LastName,
		&out.Email,
		&out.PhoneNumber,
		&out.DateOfBirth,
		&out.Gender,
		&out.DesignationID,
		&out.HireDate,
		&out.Salary,
		&out.ManagerID,
		&out.CompanyID,
		&out.BankName,
		&out.BankAccountNumber,
		&out.IFSCCode,
		&out.PANNumber,
		&out.PhotoURL,
		&out.LinkedinURL,
		&out.GithubURL,
		&out.Domain,
		&out.Status,
		&out.Skills,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func strptr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
