package implementation

import (
	"errors"
	"fmt"
	"testing"

	"career-ai-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	assert.ErrorIs(t, translateWriteError(gorm.ErrDuplicatedKey), contract.ErrDuplicateEmail)
	assert.ErrorIs(t, translateWriteError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)), contract.ErrDuplicateEmail)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateWriteError(other))
}
