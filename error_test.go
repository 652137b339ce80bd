package recipebook_test

import (
	"errors"
	"testing"

	"github.com/griffdawg123/recipebook"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recipebook.Errorf(recipebook.EAPI, "HTTP %d: %s", 500, "quota exceeded")

	assert.Equal(t, recipebook.EAPI, recipebook.ErrorCode(err))
	assert.Equal(t, "HTTP 500: quota exceeded", recipebook.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipebook.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, recipebook.EINTERNAL, recipebook.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipebook.ErrorMessage(nil))
}
