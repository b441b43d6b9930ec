package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, name, email, password_hash, role, phone, photo, address,
           father_name, experience, last_salary, emergency_number,
           emergency_contact_name, emergency_relation, created_at`

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ErrIsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.Role, &emp.Phone,
		&emp.Photo, &emp.Address, &emp.FatherName, &emp.Experience, &emp.LastSalary,
		&emp.EmergencyNumber, &emp.EmergencyContactName, &emp.EmergencyRelation,
		&emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	return scanEmployee(row)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE email = $1
  `, email)
	return scanEmployee(row)
}

func (s *Store) RoleOf(ctx context.Context, employeeID string) (string, error) {
	var role string
	err := s.DB.QueryRow(ctx, "SELECT role FROM employees WHERE id = $1", employeeID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY created_at, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.Role, &emp.Phone,
			&emp.Photo, &emp.Address, &emp.FatherName, &emp.Experience, &emp.LastSalary,
			&emp.EmergencyNumber, &emp.EmergencyContactName, &emp.EmergencyRelation,
			&emp.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

// Create relies on the unique index on email to close the
// read-then-write race: a concurrent duplicate surfaces as a 23505,
// mapped to ErrEmailTaken.
func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, password_hash, role, phone, photo, address,
      father_name, experience, last_salary, emergency_number,
      emergency_contact_name, emergency_relation)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `,
		emp.Name, emp.Email, emp.PasswordHash, emp.Role, emp.Phone, emp.Photo,
		emp.Address, emp.FatherName, emp.Experience, emp.LastSalary,
		emp.EmergencyNumber, emp.EmergencyContactName, emp.EmergencyRelation,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, employeeID string, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1,
        email = $2,
        phone = $3,
        photo = $4,
        address = $5,
        father_name = $6,
        experience = $7,
        last_salary = $8,
        emergency_number = $9,
        emergency_contact_name = $10,
        emergency_relation = $11
    WHERE id = $12
  `,
		emp.Name, emp.Email, emp.Phone, emp.Photo, emp.Address, emp.FatherName,
		emp.Experience, emp.LastSalary, emp.EmergencyNumber,
		emp.EmergencyContactName, emp.EmergencyRelation, employeeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record and returns it as confirmation.
func (s *Store) Delete(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    DELETE FROM employees
    WHERE id = $1
    RETURNING `+employeeColumns+`
  `, employeeID)
	return scanEmployee(row)
}

func (s *Store) CountSuperadmins(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE lower(role) = $1", "superadmin").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
