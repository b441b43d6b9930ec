package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"empdir/internal/domain/auth"
)

type Service struct {
	store    *Store
	secret   string
	tokenTTL time.Duration
}

func NewService(store *Store, secret string, tokenTTL time.Duration) *Service {
	return &Service{store: store, secret: secret, tokenTTL: tokenTTL}
}

func (s *Service) Store() *Store {
	return s.store
}

// Create hashes the password, persists the record and issues a token
// for the new identifier. A token issuance failure after the record is
// persisted is retried once and then reported without undoing the
// create, so a transient signing error never leaves the caller with an
// orphaned record they cannot log in to.
func (s *Service) Create(ctx context.Context, req CreateRequest) (string, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", "", err
	}

	id, err := s.store.Create(ctx, Employee{
		Name:                 req.Name,
		Email:                req.Email,
		PasswordHash:         hash,
		Role:                 req.Role,
		Phone:                req.Phone,
		Photo:                req.Photo,
		Address:              req.Address,
		FatherName:           req.FatherName,
		Experience:           req.Experience,
		LastSalary:           req.LastSalary,
		EmergencyNumber:      req.EmergencyNumber,
		EmergencyContactName: req.EmergencyContactName,
		EmergencyRelation:    req.EmergencyRelation,
	})
	if err != nil {
		return "", "", err
	}

	token, err := auth.GenerateToken(s.secret, auth.Claims{EmployeeID: id}, s.tokenTTL)
	if err != nil {
		slog.Warn("token issuance failed after create, retrying", "employeeId", id, "err", err)
		token, err = auth.GenerateToken(s.secret, auth.Claims{EmployeeID: id}, s.tokenTTL)
		if err != nil {
			return id, "", err
		}
	}
	return id, token, nil
}

// Login deliberately collapses unknown email and wrong password into
// the same error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	emp, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := auth.CheckPassword(emp.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(s.secret, auth.Claims{EmployeeID: emp.ID}, s.tokenTTL)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Get(ctx, employeeID)
}

// Update applies only the supplied, non-zero fields of req over the
// stored record and returns the result. Role and password are not
// updatable through this path.
func (s *Service) Update(ctx context.Context, employeeID string, req UpdateRequest) (*Employee, error) {
	emp, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	ApplyPartial(emp, req)

	if err := s.store.Update(ctx, employeeID, *emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Delete(ctx, employeeID)
}
