package domain

import "fmt"

type User struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CompanyID    int    `json:"company_id"`
	EmailStatus  bool   `json:"email_status"`
	ActiveStatus bool   `json:"active_status"`
	Tokens       int    `json:"tokens"`
}

// Render returns the user line of the report.
func (u *User) Render() string {
	return fmt.Sprintf("%s, %s, %s\n", u.LastName, u.FirstName, u.Email)
}

// CreditTokens adds amount to the user's token balance and returns the
// balance fragment of the report. The amount is not validated; a negative
// top-up debits the balance.
func (u *User) CreditTokens(amount int) string {
	prev := u.Tokens
	u.Tokens += amount
	return fmt.Sprintf("Previous Token Balance, %d\n      New Token Balance %d\n", prev, u.Tokens)
}
