// Package gateway watches pending donations and reconciles them against the
// payment gateway. A donation confirmed at the gateway goes through the same
// verification path as the HTTP endpoint; the pending-status precondition
// keeps the two paths from double-applying a payment.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkarpovich/givehub/internal/config"
	"github.com/mkarpovich/givehub/internal/domain"
	donationservice "github.com/mkarpovich/givehub/internal/service/donationservice"
	"github.com/mkarpovich/givehub/pkg/clients"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

const (
	ConfirmedPaymentStatus = "CONFIRMED"
	PendingPaymentStatus   = "PENDING"
	FailedPaymentStatus    = "FAILED"
)

var processingDonations sync.Map

// Response is the payment status document returned by the gateway.
type Response struct {
	Transaction string  `json:"transaction"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount,omitempty"`
}

type DonationRepo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Donation, error)
}

// Verifier applies a confirmed payment. Satisfied by the donation service.
type Verifier interface {
	Verify(ctx context.Context, donationID int) (*domain.Donation, *domain.Receipt, error)
}

type Service struct {
	url            string
	donationRepo   DonationRepo
	verifier       Verifier
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, donationRepo DonationRepo, verifier Verifier, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.GatewayAddress,
		donationRepo:   donationRepo,
		verifier:       verifier,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Gateway watcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping gateway watcher")
			return
		case <-ticker.C:
			s.processDonations(ctx)
		}
	}
}

func (s *Service) processDonations(ctx context.Context) {
	donations, err := s.donationRepo.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending donations", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, donation := range donations {
		donation := donation

		if _, loaded := processingDonations.LoadOrStore(donation.TransactionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDonations.Delete(donation.TransactionID)
				return s.handleDonation(ctx, donation)
			})
			if err != nil {
				processingDonations.Delete(donation.TransactionID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending donations", zap.Error(err))
	}
}

func (s *Service) handleDonation(ctx context.Context, donation domain.Donation) error {
	url := s.url + "/api/payments/" + donation.TransactionID
	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, _, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check payment %s after %d retries: %w", donation.TransactionID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusNoContent:
				// Gateway hasn't seen the payment yet, check again on the
				// next tick.
				return nil
			case http.StatusTooManyRequests:
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("gateway rate limited payment %s", donation.TransactionID)
			case http.StatusOK:
				return s.processPayment(ctx, donation, respBody)
			default:
				zap.L().Error("Unexpected status code from gateway", zap.Int("status", statusCode), zap.String("transaction", donation.TransactionID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processPayment(ctx context.Context, donation domain.Donation, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}

	if response.Transaction != donation.TransactionID {
		return fmt.Errorf("transaction mismatch: expected %s, got %s", donation.TransactionID, response.Transaction)
	}

	switch response.Status {
	case ConfirmedPaymentStatus:
		_, _, err := s.verifier.Verify(ctx, donation.ID)
		if errors.Is(err, donationservice.ErrAlreadyProcessed) {
			// Verified through the HTTP endpoint in the meantime.
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to verify donation %d: %w", donation.ID, err)
		}
	case PendingPaymentStatus:
		zap.L().Info("Payment still pending at gateway", zap.String("transaction", donation.TransactionID))
	case FailedPaymentStatus:
		zap.L().Info("Payment failed at gateway, donation stays pending", zap.String("transaction", donation.TransactionID))
	default:
		zap.L().Warn("Unrecognized payment status", zap.String("transaction", donation.TransactionID), zap.String("status", response.Status))
	}
	return nil
}
