// Package model holds the domain types shared between the controller,
// service and repository layers.
package model

import (
	"errors"
	"time"
)

// ErrAccountExists is returned when an account with the same email is already stored.
var ErrAccountExists = errors.New("account already exists")

// AddAccountParams is the input of account creation. The password
// confirmation never reaches this layer.
type AddAccountParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is a created account as returned to the client.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
