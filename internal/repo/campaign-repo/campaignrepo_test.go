package campaignrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkarpovich/givehub/internal/domain"
	"github.com/mkarpovich/givehub/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var campaignRows = []string{
	"id", "title", "description", "target_amount", "current_amount", "donors_count",
	"progress_percentage", "status", "end_date", "created_at",
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Campaign
	}{
		{
			name: "Campaign exists",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows(campaignRows).
					AddRow(7, "Clean Water", "Wells for villages", decimal.NewFromInt(1000), decimal.NewFromInt(250), 1,
						25.0, "active", timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: &domain.Campaign{
				ID: 7, Title: "Clean Water", Description: "Wells for villages",
				TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250),
				DonorsCount: 1, ProgressPercentage: 25.0, Status: "active",
				EndDate: timeNow, CreatedAt: timeNow,
			},
		},
		{
			name: "Campaign does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	rows := pgxmock.NewRows(campaignRows).
		AddRow(7, "Clean Water", "", decimal.NewFromInt(1000), decimal.Zero, 0,
			0.0, "active", timeNow, timeNow)
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(rows)

	result, err := repo.FindByIDForUpdate(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 7, result.ID)
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Campaigns found",
			mockSetup: func() {
				rows := pgxmock.NewRows(campaignRows).
					AddRow(7, "Clean Water", "", decimal.NewFromInt(1000), decimal.NewFromInt(250), 1,
						25.0, "active", timeNow, timeNow).
					AddRow(8, "School Books", "", decimal.NewFromInt(500), decimal.NewFromInt(500), 10,
						100.0, "completed", timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No campaigns",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
					WillReturnRows(pgxmock.NewRows(campaignRows))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()
	endDate := timeNow.AddDate(0, 3, 0)

	campaign := &domain.Campaign{
		Title:        "Clean Water",
		Description:  "Wells for villages",
		TargetAmount: decimal.NewFromInt(1000),
		Status:       "active",
		EndDate:      endDate,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Campaign saved successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
						WithArgs("Clean Water", "Wells for villages", decimal.NewFromInt(1000), "active", endDate).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, timeNow))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
						WithArgs("Clean Water", "Wells for villages", decimal.NewFromInt(1000), "active", endDate).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Create(context.Background(), campaign)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, saved.ID)
				assert.Equal(t, timeNow, saved.CreatedAt)
			}
		})
	}
}

func TestRepository_UpdateAggregates(t *testing.T) {
	repo, mock, _ := NewMock(t)

	campaign := &domain.Campaign{
		ID:                 7,
		CurrentAmount:      decimal.NewFromInt(250),
		DonorsCount:        1,
		ProgressPercentage: 25.0,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Aggregates updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET current_amount = $1, donors_count = $2, progress_percentage = $3")).
					WithArgs(decimal.NewFromInt(250), 1, 25.0, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET current_amount = $1, donors_count = $2, progress_percentage = $3")).
					WithArgs(decimal.NewFromInt(250), 1, 25.0, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateAggregates(context.Background(), campaign)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
						WithArgs("cancelled", 7).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
						WithArgs("cancelled", 7).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 7, "cancelled")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
