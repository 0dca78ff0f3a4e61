package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"jane@college.edu",
		"jane.doe+tag@my-college.ac.uk",
		"a_b%c@dept.college.org",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"UPPER@College.edu",
		"spaces in@college.edu",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestIsAllowedImageExtension(t *testing.T) {
	assert.True(t, IsAllowedImageExtension(".png"))
	assert.True(t, IsAllowedImageExtension(".jpg"))
	assert.True(t, IsAllowedImageExtension(".jpeg"))
	assert.False(t, IsAllowedImageExtension(".gif"))
	assert.False(t, IsAllowedImageExtension(".svg"))
	assert.False(t, IsAllowedImageExtension(""))
}
