package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const TokenTypeBearer = "bearer"

type SignupParams struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BookParams is the body of a create or update request.
type BookParams struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// BookResponse is a stored book. The service assigns ID on create.
type BookResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Message is the body of successful signup and delete responses.
type Message struct {
	Message string `json:"message"`
}

// Detail is the error envelope. Detail is a string for domain errors and an array of validation
// items for 422 responses.
type Detail struct {
	Detail ldvalue.Value `json:"detail"`
}

// ValidationError is the 422 envelope: one item per problem found in the request.
type ValidationError struct {
	Detail []ValidationItem `json:"detail"`
}

type ValidationItem struct {
	Loc  []ldvalue.Value `json:"loc"`
	Msg  string          `json:"msg"`
	Type string          `json:"type"`
}
