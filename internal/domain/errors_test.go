package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("restaurant not found")))
	assert.Equal(t, KindConflict, KindOf(Conflictf("name taken")))
	assert.Equal(t, KindValidation, KindOf(Validationf("bad price")))

	// Wrapping keeps the classification.
	wrapped := fmt.Errorf("create restaurant: %w", Conflictf("name taken"))
	assert.Equal(t, KindConflict, KindOf(wrapped))

	// Untagged errors default to internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("connection reset")))
}

func TestMessagesOf(t *testing.T) {
	multi := ValidationErrors([]string{"name: required", "price: must be positive"})
	assert.Equal(t, []string{"name: required", "price: must be positive"}, MessagesOf(multi))
	assert.Equal(t, "name: required; price: must be positive", multi.Error())

	assert.Equal(t, []string{"boom"}, MessagesOf(errors.New("boom")))
}
