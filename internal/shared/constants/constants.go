// Package constants defines shared constant values used across the application.
package constants

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Auth response messages
const (
	EmailAlreadyRegistered     = "Email already registered"
	UserRegisteredSuccessfully = "User registered successfully"
	EmailPasswordRequired      = "Email and password are required"
	UserNotFound               = "User not found"
	InvalidPassword            = "Invalid password"
	LoginSuccess               = "Login successful"
)

// Ticket response messages
const (
	TicketCreatedSuccessfully    = "Ticket created successfully"
	TicketsRetrievedSuccessfully = "Tickets retrieved successfully"
	TicketRetrievedSuccessfully  = "Ticket retrieved successfully"
	TicketNotFound               = "Ticket not found"
)

// Message response messages
const (
	MessageCreated    = "Message created and AI response generated"
	NoAIResponseFound = "No AI response found"
)

// Generic messages
const (
	InternalServerError = "Internal Server Error"
)

// AIFallbackMessage is the canned assistant reply stored when the
// completion service is unavailable or returns a non-success response.
const AIFallbackMessage = "I'm sorry, something went wrong."

// TokenTypeBearer is the token_type value returned with issued tokens.
const TokenTypeBearer = "bearer"
