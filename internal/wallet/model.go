package wallet

import "time"

// Wallet is the stored-value account provisioned one-to-one with a user at
// registration. Balance is kept in minor currency units.
type Wallet struct {
	ID        string
	UserID    string
	Balance   int64
	Currency  string
	CreatedAt time.Time
}
