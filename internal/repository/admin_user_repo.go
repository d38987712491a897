package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// AdminUserRepository is the persistence boundary for admin console accounts.
type AdminUserRepository interface {
	GetByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
}

// PostgresAdminUserRepository handles admin account data access on Postgres.
type PostgresAdminUserRepository struct {
	db *sqlx.DB
}

// NewPostgresAdminUserRepository creates a new PostgresAdminUserRepository.
func NewPostgresAdminUserRepository(db *sqlx.DB) *PostgresAdminUserRepository {
	return &PostgresAdminUserRepository{db: db}
}

// GetByEmail returns the admin account for the email, or sql.ErrNoRows.
func (r *PostgresAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	const q = `SELECT * FROM admin_users WHERE email = $1 LIMIT 1`

	var u models.AdminUser
	if err := r.db.Get(&u, q, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new admin account.
func (r *PostgresAdminUserRepository) Create(user *models.AdminUser) error {
	const q = `INSERT INTO admin_users (email, password_hash, name, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}
