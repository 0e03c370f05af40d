package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkKeepsNameAndURL(t *testing.T) {
	a := Link("ticket", "https://example.com/t/1")
	assert.Equal(t, Annotation{Type: TypeLink, Value: "https://example.com/t/1", Name: "ticket"}, a)
}

func TestPresetsExtendCommonAPI(t *testing.T) {
	for name, l := range map[string]List{
		"health": HealthCheck(),
		"crud":   CRUD(),
		"auth":   Auth(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, l.Has(TypeEpic, "BookStore API"))
			assert.True(t, l.Has(TypeTag, "api"))
			assert.True(t, l.Has(TypeTag, "automation"))
		})
	}
	assert.Equal(t, []string{SeverityCritical}, HealthCheck().Values(TypeSeverity))
	assert.Equal(t, []string{SeverityHigh}, Auth().Values(TypeSeverity))
	assert.Empty(t, CRUD().Values(TypeSeverity))
}

func TestPresetsDoNotShareBackingArrays(t *testing.T) {
	a := CRUD()
	b := CRUD()
	a[0] = Tag("changed")
	assert.Equal(t, Epic("BookStore API"), b[0])
}

func TestValuesPreservesOrder(t *testing.T) {
	l := List{Tag("a"), Feature("f"), Tag("b")}
	assert.Equal(t, []string{"a", "b"}, l.Values(TypeTag))
	assert.Nil(t, l.Values(TypeOwner))
}
