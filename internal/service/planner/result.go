package planner

import "github.com/heartmarshall/hifz-planner/internal/domain"

// Result is returned by progress operations. Expected conditions such as a
// missing page or a finished plan come back with Success false and a
// user-facing Message; Err keeps the underlying cause.
type Result struct {
	Success    bool
	Message    string
	Assignment domain.Assignment
	Plan       *domain.Plan
	Err        error
}

// User-facing messages.
const (
	msgSignIn          = "Sign in to track your progress."
	msgNoPlan          = "No active plan found."
	msgPlanComplete    = "You have completed this plan."
	msgRevisionPending = "Revise your earlier pages before memorizing the next one."
	msgPageNotFound    = "Page not found in this plan."
	msgSaveFailed      = "Could not save your progress. Please try again."
)
