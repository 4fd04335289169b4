package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"acme":       "acme",
		"50%":        `50\%`,
		"a_b":        `a\_b`,
		`back\slash`: `back\\slash`,
		`%_\`:        `\%\_\\`,
	}

	for in, want := range cases {
		assert.Equal(t, want, EscapeLike(in))
	}
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%acme%", ContainsPattern("Acme"))
	assert.Equal(t, `%50\% off%`, ContainsPattern("50% OFF"))
	assert.Equal(t, "%%", ContainsPattern(""))
}
