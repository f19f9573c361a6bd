// Package schema bootstraps the database objects the service relies on.
// Every statement is idempotent so startup is safe against an already
// initialized database.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const ddl = `
create table if not exists skills (
    skill_id   bigint generated always as identity primary key,
    skill_name text not null unique,
    category   text,
    created_at timestamptz not null default now()
);

create table if not exists employee (
    employee_id         bigint generated always as identity primary key,
    first_name          text not null,
    last_name           text not null,
    email               text not null unique,
    phone_number        text,
    date_of_birth       date,
    gender              text,
    designation_id      int,
    hire_date           date not null,
    salary              numeric,
    manager_id          bigint,
    company_id          int,
    bank_name           text not null,
    bank_account_number text not null unique,
    ifsc_code           text,
    pan_number          text not null unique,
    photo_url           text,
    linkedin_url        text,
    github_url          text,
    domain              text,
    status              text not null default 'Active',
    created_at          timestamptz not null default now(),
    updated_at          timestamptz not null default now()
);

create table if not exists employee_skills (
    employee_id bigint not null references employee (employee_id),
    skill_id    bigint not null references skills (skill_id),
    primary key (employee_id, skill_id)
);
`

func Apply(ctx context.Context, pool PgxPoolIface) error {
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
