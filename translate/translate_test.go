package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(LANGUAGE_DEFAULT)

	tag := SetLanguage("en-GB", "en-US")
	assert.Equal(tag, Language())

	// No locales falls back to the default.
	assert.Equal(SetLanguage(LANGUAGE_DEFAULT), SetLanguage())
	assert.Equal(SetLanguage(LANGUAGE_DEFAULT), Language())
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(LANGUAGE_DEFAULT)
	SetLanguage(LANGUAGE_DEFAULT)

	assert.Equal("address 7 out of range", From("address %d out of range", 7))
	assert.Equal("[99]", From("[%v]", "99"))

	var buf bytes.Buffer
	n, err := Fprintf(&buf, "fingerprint: %016x\n", uint64(0xbeef))
	assert.NoError(err)
	assert.Equal("fingerprint: 000000000000beef\n", buf.String())
	assert.Equal(buf.Len(), n)
}
