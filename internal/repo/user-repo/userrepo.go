package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpovich/givehub/internal/domain"
	"github.com/mkarpovich/givehub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT id, login, password_hash, name, email, phone, role, total_donated
        FROM users
        WHERE login = $1
    `
	err := repo.db.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Name, &user.Email, &user.Phone, &user.Role, &user.TotalDonated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT id, login, password_hash, name, email, phone, role, total_donated
        FROM users
        WHERE id = $1
    `
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Name, &user.Email, &user.Phone, &user.Role, &user.TotalDonated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, name, email, phone, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := repo.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.Name, user.Email, user.Phone, user.Role,
	).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddToTotalDonated accumulates a verified donation into the donor's
// lifetime total. Called only from the verification transaction.
func (repo *Repository) AddToTotalDonated(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
        UPDATE users
        SET total_donated = total_donated + $1
        WHERE id = $2
    `
	_, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't update user total donated", zap.Error(err))
		return err
	}
	return nil
}
