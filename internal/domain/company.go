package domain

import (
	"fmt"
	"sort"
	"strings"
)

type Company struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TopUp       int    `json:"top_up"`
	EmailStatus bool   `json:"email_status"`

	users []*User
}

// AddUser appends a user to the company's collection. Association
// correctness (user.CompanyID == company.ID) is the caller's concern.
func (c *Company) AddUser(user *User) {
	c.users = append(c.users, user)
}

// Users returns a copy of the company's user collection.
func (c *Company) Users() []*User {
	out := make([]*User, len(c.users))
	copy(out, c.users)
	return out
}

// ActiveUsers returns the active users sorted by last name ascending.
// The sort is stable: users with equal last names keep insertion order.
func (c *Company) ActiveUsers() []*User {
	active := make([]*User, 0, len(c.users))
	for _, u := range c.users {
		if u.ActiveStatus {
			active = append(active, u)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].LastName < active[j].LastName
	})
	return active
}

// Render returns the company header of the report.
func (c *Company) Render() string {
	return fmt.Sprintf("  Company Id: %d\n  Company Name: %s\n", c.ID, c.Name)
}

// UsersEmailedSection renders the emailed partition. When the company's
// batch was emailed, every active user who was themselves emailed is listed
// and credited with the company top-up. Crediting mutates the user's token
// balance, so rendering this section is not read-only.
func (c *Company) UsersEmailedSection() string {
	var b strings.Builder
	b.WriteString("  Users Emailed:\n")

	if !c.EmailStatus {
		return b.String()
	}

	for _, u := range c.ActiveUsers() {
		if u.EmailStatus {
			b.WriteString("    " + u.Render())
			b.WriteString("      " + u.CreditTokens(c.TopUp))
		}
	}

	return b.String()
}

// UsersNotEmailedSection renders the not-emailed partition. When the
// company's batch was not emailed, every active user lands here regardless
// of their own email status; otherwise only the active users who were not
// emailed. Listed users are credited with the company top-up.
func (c *Company) UsersNotEmailedSection() string {
	var b strings.Builder
	b.WriteString("  Users Not Emailed:\n")

	if !c.EmailStatus {
		for _, u := range c.ActiveUsers() {
			b.WriteString("    " + u.Render())
			b.WriteString("      " + u.CreditTokens(c.TopUp))
		}
		return b.String()
	}

	for _, u := range c.ActiveUsers() {
		if !u.EmailStatus {
			b.WriteString("    " + u.Render())
			b.WriteString("      " + u.CreditTokens(c.TopUp))
		}
	}

	return b.String()
}

// UsersSection renders the emailed partition followed by the not-emailed
// partition. Between the two, every active user is credited exactly once
// per report run; inactive users are never credited.
func (c *Company) UsersSection() string {
	return c.UsersEmailedSection() + c.UsersNotEmailedSection()
}

// TotalTopUp returns the company's top-up total line. The total is
// activeUserCount * topUp, deliberately computed from the count rather than
// summed from the per-user credits applied during rendering.
func (c *Company) TotalTopUp() string {
	total := len(c.ActiveUsers()) * c.TopUp
	return fmt.Sprintf("    Total amount of top ups for %s: %d\n", c.Name, total)
}
