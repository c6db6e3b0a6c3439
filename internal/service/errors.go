// Package service implements the business logic of the development backend:
// account management, behavior logging with karma accrual, the reward
// catalog, and the admin analytics snapshot.
package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrBehaviorNotFound   = errors.New("Behavior not found")
	ErrRewardNotFound     = errors.New("Reward not found")
	ErrAlreadyUnlocked    = errors.New("Reward already unlocked")
	ErrNotEnoughKarma     = errors.New("Not enough karma to unlock this reward")
	ErrForbidden          = errors.New("Admin access required")
)
