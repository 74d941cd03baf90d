package models

// BattleTag links a chat handle to the Battle.net account its owner registered.
type BattleTag struct {
	Handle string `json:"handle" db:"handle"`
	Tag    string `json:"battle_tag" db:"battle_tag"`
}
