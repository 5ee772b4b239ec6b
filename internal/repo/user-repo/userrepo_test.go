package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpovich/givehub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userRows = []string{"id", "login", "password_hash", "name", "email", "phone", "role", "total_donated"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			login: "mira",
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(3, "mira", "hashed", "Mira", "mira@example.com", "+60123", "donor", decimal.NewFromInt(500))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("mira").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID: 3, Login: "mira", PasswordHash: "hashed", Name: "Mira",
				Email: "mira@example.com", Phone: "+60123", Role: "donor",
				TotalDonated: decimal.NewFromInt(500),
			},
		},
		{
			name:  "User does not exist",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "mira",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("mira").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		found     bool
	}{
		{
			name: "User exists",
			id:   3,
			mockSetup: func() {
				rows := pgxmock.NewRows(userRows).
					AddRow(3, "mira", "hashed", "Mira", "mira@example.com", "+60123", "donor", decimal.Zero)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "User does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	user := &domain.User{
		Login:        "mira",
		PasswordHash: "hashed",
		Name:         "Mira",
		Email:        "mira@example.com",
		Role:         "donor",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "User saved successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("mira", "hashed", "Mira", "mira@example.com", "", "donor").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("mira", "hashed", "Mira", "mira@example.com", "", "donor").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, saved.ID)
			}
		})
	}
}

func TestRepository_AddToTotalDonated(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Total accumulated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET total_donated = total_donated + $1")).
					WithArgs(decimal.NewFromInt(250), 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET total_donated = total_donated + $1")).
					WithArgs(decimal.NewFromInt(250), 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddToTotalDonated(context.Background(), 3, decimal.NewFromInt(250))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
