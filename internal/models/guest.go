package models

// Guest is a simulated customer seated at a table for the demo session.
type Guest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TableNumber string `json:"table_number"`
	PartySize   int    `json:"party_size"`
}
