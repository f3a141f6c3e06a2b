package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'inc e' register invalid", From("line %d '%v' %v", 3, "inc e", "register invalid"))
	assert.Equal("$(1 +) is not a valid expression", From("$(%v) is not a valid expression", "1 +"))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	for _, locales := range [][]string{nil, {}, {"en-US"}, {"fr-CA", "en-GB"}, {"not a locale"}} {
		printer := newPrinter(locales)
		assert.NotNil(printer, locales)
		assert.Equal("cpy 41 a", printer.Sprintf("%v %v", "cpy", "41 a"), locales)
	}
}
