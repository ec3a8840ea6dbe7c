package entities

import "github.com/volatiletech/null"

type CategoryEntity struct {
	ID     uint64      `json:"id"`
	Name   string      `json:"name"`
	UserID null.Uint64 `json:"user"`
	Global bool        `json:"global"`
}
