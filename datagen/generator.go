// Package datagen produces random but plausible field values for request bodies.
//
// Values are only probabilistically unique. Numeric ranges are kept loose so that collisions
// within a single run are unlikely, but nothing is guaranteed across runs.
package datagen

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	MinID          = 1000
	MaxID          = 9999
	MinPrice       = 10.0
	MaxPrice       = 100.0
	PasswordLength = 8
)

// Generator produces random values. It is safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator with the given seed. Two generators with the same nonzero seed produce
// the same sequence, except for the UUID fragment of email addresses. A zero seed picks a random
// one.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(uint64(seed))}
}

var defaultGenerator = New(0)

// Default returns the process-wide generator.
func Default() *Generator { return defaultGenerator }

// Email returns a random email address. The local part ends with a UUID fragment.
func (g *Generator) Email() string {
	local, domain, _ := strings.Cut(g.faker.Email(), "@")
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return local + "." + fragment + "@" + domain
}

// ID returns a random integer in [MinID, MaxID].
func (g *Generator) ID() int {
	return g.faker.Number(MinID, MaxID)
}

// Password returns a random alphanumeric password of PasswordLength characters.
func (g *Generator) Password() string {
	return g.faker.Password(true, true, true, false, false, PasswordLength)
}

// Words returns n random lorem words separated by spaces.
func (g *Generator) Words(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = g.faker.LoremIpsumWord()
	}
	return strings.Join(words, " ")
}

func (g *Generator) BookTitle() string {
	return g.Words(3)
}

func (g *Generator) BookAuthor() string {
	return g.faker.FirstName() + " " + g.faker.LastName()
}

// BookDescription returns a capitalized sentence of 5 to 10 words ending with a period.
func (g *Generator) BookDescription() string {
	return g.faker.LoremIpsumSentence(g.faker.Number(5, 10))
}

// BookPrice returns a price in [MinPrice, MaxPrice) with two decimal places.
func (g *Generator) BookPrice() float64 {
	return g.faker.Price(MinPrice, MaxPrice)
}

// Book returns a complete book request body.
func (g *Generator) Book() BookFields {
	return BookFields{
		Title:       g.BookTitle(),
		Author:      g.BookAuthor(),
		Description: g.BookDescription(),
		Price:       g.BookPrice(),
	}
}

// Signup returns a complete signup request body.
func (g *Generator) Signup() SignupFields {
	return SignupFields{
		ID:       g.ID(),
		Email:    g.Email(),
		Password: g.Password(),
	}
}

// BookFields and SignupFields are plain value sets; callers convert them into wire types.
type BookFields struct {
	Title       string
	Author      string
	Description string
	Price       float64
}

type SignupFields struct {
	ID       int
	Email    string
	Password string
}

func Email() string { return defaultGenerator.Email() }
func ID() int { return defaultGenerator.ID() }
func Password() string { return defaultGenerator.Password() }
func BookTitle() string { return defaultGenerator.BookTitle() }
func BookAuthor() string { return defaultGenerator.BookAuthor() }
func BookDescription() string { return defaultGenerator.BookDescription() }
func BookPrice() float64 { return defaultGenerator.BookPrice() }
func Book() BookFields { return defaultGenerator.Book() }
func Signup() SignupFields { return defaultGenerator.Signup() }
