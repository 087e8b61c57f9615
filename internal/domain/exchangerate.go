package domain

import (
	"errors"
	"time"
)

// ErrRateNotFound indicates that the exchange rate series is empty.
var ErrRateNotFound = errors.New("no exchange rate recorded")

// ExchangeRate is one timestamped observation of the simulated exchange rate.
type ExchangeRate struct {
	ID        string    `json:"id"`
	Rate      string    `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

// BackfillResult reports the outcome of a historical rate generation run.
type BackfillResult struct {
	Count     int       `json:"count"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
