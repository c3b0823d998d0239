package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// recipeRequest is the inbound recipe draft for both create and update. Any
// id, date, or owner supplied by the client is ignored.
type recipeRequest struct {
	Name        string   `json:"name"        validate:"required,notblank"`
	Category    string   `json:"category"    validate:"required,notblank"`
	Description string   `json:"description" validate:"required,notblank"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,notblank"`
	Directions  []string `json:"directions"  validate:"required,min=1,dive,notblank"`
}

type registerRequest struct {
	UserName string `json:"userName" validate:"required,email,contains=."`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// idResponse carries the id assigned to a newly created recipe.
type idResponse struct {
	ID int `json:"id"`
}

// recipeResponse exposes the recipe id but never the owner or any user id.
type recipeResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Directions  []string  `json:"directions"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
