package vo

import "fmt"

// PayoutDeliveryError describes a failed payout notification. StatusCode is
// zero and Body empty when no response was received at all.
type PayoutDeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *PayoutDeliveryError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("payout notification rejected with status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("payout notification not delivered: %v", e.Err)
	default:
		return "payout notification not delivered"
	}
}

func (e *PayoutDeliveryError) Unwrap() error {
	return e.Err
}
