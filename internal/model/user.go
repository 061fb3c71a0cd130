package model

import "time"

type User struct {
	ID       string
	Email    string
	Password string // hashed
	Created  time.Time
}
