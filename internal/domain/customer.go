package domain

import "fmt"

// Customer is immutable once registered at the desk.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Customer) Describe() string {
	return fmt.Sprintf("User ID: %s, Name: %s", c.ID, c.Name)
}
