package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"github.com/sony/gobreaker"

	"github.com/joshuarp/dataunion-withdraw/internal/domain"
	"github.com/joshuarp/dataunion-withdraw/internal/domain/vo"
	sharedjwt "github.com/joshuarp/dataunion-withdraw/internal/shared/jwt"
	"github.com/joshuarp/dataunion-withdraw/internal/shared/uid"
)

const (
	defaultPayoutAttempts   = 3
	defaultPayoutRetryDelay = 500 * time.Millisecond
	defaultPayoutCooldown   = time.Minute
)

// HTTPPayoutSender posts payout notifications as JSON. When a signer is set,
// requests carry a bearer token signed with the shared payout secret. The run
// id header is added by the client's request hook.
//
// Retries are bounded by a circuit breaker shared by every Send on the
// sender: once it opens, further notifications are refused without a request
// until the cooldown has passed.
type HTTPPayoutSender struct {
	client     *client.Client
	url        string
	signer     sharedjwt.Signer
	breaker    *gobreaker.CircuitBreaker
	retryDelay time.Duration
}

func NewHTTPPayoutSender(httpClient *client.Client, cfg domain.WithdrawConfig, signer sharedjwt.Signer) *HTTPPayoutSender {
	attempts := cfg.Payout.Attempts
	if attempts <= 0 {
		attempts = defaultPayoutAttempts
	}

	return &HTTPPayoutSender{
		client:     httpClient,
		url:        cfg.Payout.URL,
		signer:     signer,
		breaker:    newPayoutCircuitBreaker(attempts, defaultPayoutCooldown),
		retryDelay: defaultPayoutRetryDelay,
	}
}

// newPayoutCircuitBreaker opens after attempts consecutive outages. A 4xx
// answer is the receiver's decision, not an outage, so it leaves the
// failure count alone.
func newPayoutCircuitBreaker(attempts int, cooldown time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payout",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(attempts)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !retryableDelivery(err)
		},
	})
}

// Send retries transport failures and 5xx responses until the breaker opens.
// A 4xx response is final.
func (s *HTTPPayoutSender) Send(ctx context.Context, notification domain.PayoutNotification) error {
	if s.url == "" {
		return &vo.PayoutDeliveryError{Err: fmt.Errorf("payout url is not configured")}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	if s.signer != nil {
		token, err := s.signer.Sign(ctx, sharedjwt.Claims{
			Subject:         notification.EthAddress,
			ID:              uid.RunIDFromContext(ctx),
			Amount:          notification.Amount,
			TransactionHash: notification.TransactionHash,
		})
		if err != nil {
			return fmt.Errorf("repository: failed to sign payout token: %w", err)
		}
		headers["Authorization"] = "Bearer " + token
	}

	for attempt := 1; ; attempt++ {
		_, err := s.breaker.Execute(func() (interface{}, error) {
			return nil, s.post(ctx, headers, notification)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return &vo.PayoutDeliveryError{Err: err}
		case !retryableDelivery(err):
			return err
		case s.breaker.State() == gobreaker.StateOpen:
			return errors.Join(err, gobreaker.ErrOpenState)
		}

		select {
		case <-ctx.Done():
			return &vo.PayoutDeliveryError{Err: ctx.Err()}
		case <-time.After(s.retryDelay * time.Duration(attempt)):
		}
	}
}

func (s *HTTPPayoutSender) post(ctx context.Context, headers map[string]string, notification domain.PayoutNotification) error {
	resp, err := s.client.Post(s.url, client.Config{
		Ctx:    ctx,
		Header: headers,
		Body:   notification,
	})
	if err != nil {
		return &vo.PayoutDeliveryError{Err: err}
	}
	defer resp.Close()

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return &vo.PayoutDeliveryError{StatusCode: status, Body: string(resp.Body())}
	}

	return nil
}

func retryableDelivery(err error) bool {
	var deliveryErr *vo.PayoutDeliveryError
	if !errors.As(err, &deliveryErr) {
		return false
	}
	return deliveryErr.StatusCode == 0 || deliveryErr.StatusCode >= 500
}
