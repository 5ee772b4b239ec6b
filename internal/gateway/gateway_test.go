package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mkarpovich/givehub/internal/config"
	"github.com/mkarpovich/givehub/internal/domain"
	donationservice "github.com/mkarpovich/givehub/internal/service/donationservice"
	"github.com/mkarpovich/givehub/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockDonationRepo, *MockVerifier, *clients.MockHTTPClientI) {
	cfg := &config.Config{GatewayAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	donationRepo := NewMockDonationRepo(ctrl)
	verifier := NewMockVerifier(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, donationRepo, verifier, client)
	return service, donationRepo, verifier, client
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processDonations(t *testing.T) {
	tests := []struct {
		name            string
		mockFindPending func(ctx context.Context, limit uint32) ([]domain.Donation, error)
		mockAddTask     func(ctx context.Context, task Task) error
		expectedErr     error
		donationCount   int
	}{
		{
			name: "successfully schedules pending donations",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Donation, error) {
				return []domain.Donation{
					{ID: 1, TransactionID: "TXN-20240131154501-4929357942", Status: "pending"},
					{ID: 2, TransactionID: "TXN-20240131154502-1234567897", Status: "pending"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			donationCount: 2,
		},
		{
			name: "fails when fetching pending donations",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Donation, error) {
				return nil, fmt.Errorf("failed to fetch pending donations")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:   fmt.Errorf("failed to fetch pending donations"),
			donationCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Donation, error) {
				return []domain.Donation{
					{ID: 3, TransactionID: "TXN-20240131154503-1111111118", Status: "pending"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			expectedErr:   fmt.Errorf("failed to add task to worker pool"),
			donationCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			donationRepo := NewMockDonationRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			donationRepo.EXPECT().
				FindPending(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindPending).
				Times(1)
			for i := 0; i < tt.donationCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				donationRepo: donationRepo,
				workerPool:   workerPool,
				limit:        10,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processDonations(ctx)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}

func TestService_handleDonation(t *testing.T) {
	testCases := []struct {
		name          string
		donation      domain.Donation
		httpStatus    int
		responseBody  string
		expectedError string
		cancelContext bool
		retryError    error
		verified      bool
	}{
		{
			name:         "Payment confirmed at gateway",
			donation:     domain.Donation{ID: 1, TransactionID: "TXN-1", Status: "pending"},
			httpStatus:   http.StatusOK,
			responseBody: `{"transaction":"TXN-1","status":"CONFIRMED","amount":250}`,
			verified:     true,
		},
		{
			name:         "Payment still pending at gateway",
			donation:     domain.Donation{ID: 2, TransactionID: "TXN-2", Status: "pending"},
			httpStatus:   http.StatusOK,
			responseBody: `{"transaction":"TXN-2","status":"PENDING"}`,
		},
		{
			name:         "Gateway has not seen the payment yet",
			donation:     domain.Donation{ID: 3, TransactionID: "TXN-3", Status: "pending"},
			httpStatus:   http.StatusNoContent,
			responseBody: "",
		},
		{
			name:          "Context canceled",
			donation:      domain.Donation{ID: 4, TransactionID: "TXN-4", Status: "pending"},
			httpStatus:    http.StatusOK,
			responseBody:  `{"transaction":"TXN-4","status":"PENDING"}`,
			expectedError: context.Canceled.Error(),
			cancelContext: true,
		},
		{
			name:          "Failed after retries",
			donation:      domain.Donation{ID: 5, TransactionID: "TXN-5", Status: "pending"},
			httpStatus:    http.StatusInternalServerError,
			responseBody:  "",
			expectedError: "failed to check payment TXN-5 after 3 retries: server error",
			retryError:    errors.New("server error"),
		},
		{
			name:          "Rate limited after retries",
			donation:      domain.Donation{ID: 6, TransactionID: "TXN-6", Status: "pending"},
			httpStatus:    http.StatusTooManyRequests,
			responseBody:  "",
			expectedError: "gateway rate limited payment TXN-6",
		},
		{
			name:          "Unexpected status code",
			donation:      domain.Donation{ID: 7, TransactionID: "TXN-7", Status: "pending"},
			httpStatus:    http.StatusTeapot,
			responseBody:  "",
			expectedError: "unexpected status code",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service, _, verifier, client := NewMock(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if tt.cancelContext {
				cancel()
			} else if tt.retryError != nil {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, tt.retryError).Times(3)
			} else if tt.httpStatus == http.StatusTooManyRequests {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(3)
			} else {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(1)
			}

			if tt.verified {
				verifier.EXPECT().
					Verify(gomock.Any(), tt.donation.ID).
					Return(&domain.Donation{ID: tt.donation.ID, Status: "completed"}, &domain.Receipt{}, nil).
					Times(1)
			}

			err := service.handleDonation(ctx, tt.donation)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_processPayment(t *testing.T) {
	service, _, verifier, _ := NewMock(t)

	testCases := []struct {
		name      string
		donation  domain.Donation
		respBody  []byte
		verifyErr error
		verified  bool
		expectErr bool
	}{
		{
			name:     "Confirmed payment is verified",
			donation: domain.Donation{ID: 1, TransactionID: "TXN-1", Status: "pending"},
			respBody: []byte(`{"transaction":"TXN-1","status":"CONFIRMED","amount":250}`),
			verified: true,
		},
		{
			name:     "Pending payment is left alone",
			donation: domain.Donation{ID: 2, TransactionID: "TXN-2", Status: "pending"},
			respBody: []byte(`{"transaction":"TXN-2","status":"PENDING"}`),
		},
		{
			name:     "Failed payment stays pending",
			donation: domain.Donation{ID: 3, TransactionID: "TXN-3", Status: "pending"},
			respBody: []byte(`{"transaction":"TXN-3","status":"FAILED"}`),
		},
		{
			name:      "Donation verified through the endpoint meanwhile",
			donation:  domain.Donation{ID: 4, TransactionID: "TXN-4", Status: "pending"},
			respBody:  []byte(`{"transaction":"TXN-4","status":"CONFIRMED"}`),
			verified:  true,
			verifyErr: donationservice.ErrAlreadyProcessed,
		},
		{
			name:      "Verification failure is reported",
			donation:  domain.Donation{ID: 5, TransactionID: "TXN-5", Status: "pending"},
			respBody:  []byte(`{"transaction":"TXN-5","status":"CONFIRMED"}`),
			verified:  true,
			verifyErr: errors.New("db down"),
			expectErr: true,
		},
		{
			name:      "Error parsing response body",
			donation:  domain.Donation{ID: 6, TransactionID: "TXN-6", Status: "pending"},
			respBody:  []byte(`{invalid json}`),
			expectErr: true,
		},
		{
			name:      "Transaction mismatch",
			donation:  domain.Donation{ID: 7, TransactionID: "TXN-7", Status: "pending"},
			respBody:  []byte(`{"transaction":"TXN-999","status":"CONFIRMED"}`),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.verified {
				verifier.EXPECT().
					Verify(gomock.Any(), tc.donation.ID).
					Return(nil, nil, tc.verifyErr)
			}

			err := service.processPayment(context.Background(), tc.donation, tc.respBody)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
