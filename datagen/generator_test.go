package datagen

import (
	"math"
	"net/mail"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDRange(t *testing.T) {
	g := New(1)
	for i := 0; i < 10000; i++ {
		id := g.ID()
		require.GreaterOrEqual(t, id, MinID)
		require.LessOrEqual(t, id, MaxID)
	}
}

func TestPriceRangeAndPrecision(t *testing.T) {
	g := New(2)
	for i := 0; i < 10000; i++ {
		p := g.BookPrice()
		require.GreaterOrEqual(t, p, MinPrice)
		require.Less(t, p, MaxPrice)
		cents := p * 100
		require.InDelta(t, math.Round(cents), cents, 1e-6, "price %v has more than 2 decimals", p)
	}
}

func TestEmailIsValidAndVaries(t *testing.T) {
	g := New(3)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		e := g.Email()
		_, err := mail.ParseAddress(e)
		require.NoError(t, err, e)
		seen[e] = true
	}
	assert.Len(t, seen, 200)
}

func TestPassword(t *testing.T) {
	p := New(4).Password()
	assert.Len(t, p, PasswordLength)
	for _, c := range p {
		assert.True(t, unicode.IsLetter(c) || unicode.IsDigit(c), "unexpected character %q in %s", c, p)
	}
}

func TestBookFields(t *testing.T) {
	b := New(5).Book()
	assert.Len(t, strings.Fields(b.Title), 3)
	assert.Contains(t, b.Author, " ")
	assert.True(t, strings.HasSuffix(b.Description, "."))
	assert.Equal(t, strings.ToUpper(b.Description[:1]), b.Description[:1])
	assert.NotZero(t, b.Price)
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, a.Password(), b.Password())
	assert.Equal(t, a.BookTitle(), b.BookTitle())
	assert.Equal(t, a.BookAuthor(), b.BookAuthor())
	assert.Equal(t, a.BookPrice(), b.BookPrice())
}

func TestDescriptionLength(t *testing.T) {
	g := New(6)
	for i := 0; i < 100; i++ {
		n := len(strings.Fields(g.BookDescription()))
		require.GreaterOrEqual(t, n, 5)
		require.LessOrEqual(t, n, 10)
	}
}

func TestPackageFunctions(t *testing.T) {
	s := Signup()
	assert.NotEmpty(t, s.Email)
	assert.NotEmpty(t, s.Password)
	assert.NotZero(t, s.ID)
	assert.NotEmpty(t, Email())
	assert.NotZero(t, ID())
	assert.NotEmpty(t, Password())
	assert.NotEmpty(t, BookTitle())
	assert.NotEmpty(t, BookAuthor())
	assert.NotEmpty(t, BookDescription())
	assert.NotZero(t, BookPrice())
	assert.NotEmpty(t, Book().Title)
}
