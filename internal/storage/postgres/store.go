package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hongminglow/techjobbkk/internal/models"
	"github.com/hongminglow/techjobbkk/internal/storage"
	"github.com/hongminglow/techjobbkk/internal/storage/postgres/migrations"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.JobStore  = (*Store)(nil)
)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and job postings.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

const userColumns = `
	user_id, user_type,
	first_name, last_name, COALESCE(to_char(birthday, 'YYYY-MM-DD'), ''),
	address, subdistrict, district, postal_code, user_email, user_phone,
	COALESCE(logo, ''), password_hash, created_at`

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	row := s.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

// FindByEmail fetches a user by email address, ignoring case.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(user_email) = lower($1) LIMIT 1;`
	row := s.pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

// UpdateProfile overwrites the nine profile columns in one statement.
func (s *Store) UpdateProfile(ctx context.Context, id int64, p models.Profile) error {
	const query = `
	UPDATE users SET
		first_name = $1,
		last_name = $2,
		birthday = $3::date,
		address = $4,
		subdistrict = $5,
		district = $6,
		postal_code = $7,
		user_email = $8,
		user_phone = $9
	WHERE user_id = $10;
	`
	tag, err := s.pool.Exec(ctx, query,
		p.FirstName, p.LastName, p.Birthday,
		p.Address, p.Subdistrict, p.District,
		p.PostalCode, p.Email, p.Phone, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("update profile %d: %w", id, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("update profile %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var role string
	p := &user.Profile
	if err := row.Scan(&user.ID, &role,
		&p.FirstName, &p.LastName, &p.Birthday,
		&p.Address, &p.Subdistrict, &p.District, &p.PostalCode, &p.Email, &p.Phone,
		&user.Logo, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	user.Role = models.ParseRole(role)
	return user, nil
}
