package models

import "time"

// School represents a tenant school. It is owned by the settings module and
// read-only to the provisioning saga; its abbreviation is derived from the
// name on demand rather than stored.
type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Motto     string    `json:"motto,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
