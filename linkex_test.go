package linkex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/linkex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := linkex.Errorf(linkex.EFETCH, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, linkex.EFETCH, linkex.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", linkex.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", linkex.Errorf(linkex.EPERSIST, "disk full"))

	assert.Equal(t, linkex.EPERSIST, linkex.ErrorCode(err))
	assert.Equal(t, "disk full", linkex.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, linkex.EINTERNAL, linkex.ErrorCode(err))
	assert.Equal(t, "Internal error.", linkex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linkex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linkex.ErrorMessage(nil))
}
