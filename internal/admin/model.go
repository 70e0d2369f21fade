package admin

import "time"

// UserRecord is one row of the admin user listing, joined with the wallet
// balance.
type UserRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	Balance   int64     `json:"balance"`
}

// Stats summarizes the storefront for the admin dashboard. Revenue counts
// paid orders only, in minor currency units.
type Stats struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
	Orders   int64 `json:"orders"`
	Revenue  int64 `json:"revenue"`
}
