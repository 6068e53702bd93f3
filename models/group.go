package models

// Group is a contact group. Groups have a lifecycle independent from
// contacts and are referenced from contacts by id only, never embedded.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupData is the caller-supplied payload for group creation.
type GroupData struct {
	Name string `json:"name"`
}
