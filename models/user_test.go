package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	u := User{Email: "ada.obi@example.com"}

	assert.Equal(t, "ada.obi", u.DisplayName(""), "falls back to the email local part")
	assert.Equal(t, "Ada", u.DisplayName("Ada"), "token name beats the email")

	u.FullName = "Ada Obi"
	assert.Equal(t, "Ada Obi", u.DisplayName("Ada"), "stored profile name wins")
}

func TestDisplayNameMalformedEmail(t *testing.T) {
	u := User{Email: "no-at-sign"}

	assert.Equal(t, "no-at-sign", u.DisplayName(""))
}
