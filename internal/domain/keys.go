package domain

type contextKey string

// KeyUserID carries the authenticated user's ID through request contexts.
const KeyUserID contextKey = "userID"
