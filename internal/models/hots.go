package models

// PlayerRating is one row of a HotsLogs player search, kept exactly as rendered.
type PlayerRating struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	League string `json:"league"`
	MMR    string `json:"mmr"`
}

type Hero struct {
	Name string `json:"name"`
}
