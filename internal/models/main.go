// Package models defines the core data structures for users and tasks.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Email is the login identity chosen by the user, stored lower-cased.
	Email string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}

// Task is a single to-do item owned by exactly one user.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`
	// Title is the task text. Never empty.
	Title string `json:"title"`
	// Completed reports whether the task is done.
	Completed bool `json:"completed"`
	// Priority is one of the Priority constants.
	Priority string `json:"priority"`
	// Category is one of the Category constants.
	Category string `json:"category"`
	// DueDate is the optional deadline in YYYY-MM-DD form; nil means no deadline.
	DueDate *string `json:"due_date"`
	// OwnerID references the owning user. Ownership is implied by the
	// session a task was fetched through, so it is not serialized.
	OwnerID string `json:"-"`
	// CreatedAt orders task listings deterministically.
	CreatedAt time.Time `json:"-"`
}

// Priority defines the set of valid task priorities.
type Priority string

const (
	// PriorityLow marks a task that can wait.
	PriorityLow Priority = "low"
	// PriorityMedium is the default priority for new tasks.
	PriorityMedium Priority = "medium"
	// PriorityHigh marks an urgent task.
	PriorityHigh Priority = "high"
)

// Category defines the set of valid task categories.
type Category string

const (
	// CategoryPersonal is the default category for new tasks.
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
)

// ValidPriority reports whether p is a member of the priority enumeration.
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidCategory reports whether c is a member of the category enumeration.
func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryPersonal, CategoryWork, CategoryShopping, CategoryHealth, CategoryFinance:
		return true
	}
	return false
}
