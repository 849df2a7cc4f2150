package errx_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	errx "github.com/padaria-criativa/catalog/internal/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationKeepsSentinel(t *testing.T) {
	err := error(errx.Validation(errx.ErrInvalidPrice))

	assert.True(t, errors.Is(err, errx.ErrInvalidPrice))
	assert.False(t, errors.Is(err, errx.ErrInvalidStock))
	assert.Equal(t, errx.KindValidation, errx.KindOf(err))
	assert.Equal(t, "invalid product: price must be a non-negative number", err.Error())
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("register: %w", errx.Validation(errx.ErrEmptyName))

	assert.Equal(t, errx.KindValidation, errx.KindOf(err))

	var target *errx.Error
	require.True(t, errors.As(err, &target))
	assert.Equal(t, errx.ErrEmptyName, target.Err)
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, errx.Kind(""), errx.KindOf(errors.New("boom")))
	assert.Equal(t, errx.Kind(""), errx.KindOf(nil))
}

func TestWrapIO(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errx.WrapIO(nil, "padaria.json"))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		err := errx.WrapIO(&fs.PathError{Op: "open", Path: "padaria.json", Err: fs.ErrNotExist}, "padaria.json")

		assert.Equal(t, errx.KindNotFound, errx.KindOf(err))
		assert.True(t, errors.Is(err, errx.ErrNotFound))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("other failures are io", func(t *testing.T) {
		err := errx.WrapIO(&fs.PathError{Op: "open", Path: "padaria.json", Err: fs.ErrPermission}, "padaria.json")

		assert.Equal(t, errx.KindIO, errx.KindOf(err))
		assert.False(t, errors.Is(err, errx.ErrNotFound))
		assert.True(t, errors.Is(err, fs.ErrPermission))
		assert.Contains(t, err.Error(), "padaria.json")
	})
}

func TestWrapFormat(t *testing.T) {
	assert.NoError(t, errx.WrapFormat(nil, "padaria.json"))

	err := errx.WrapFormat(errors.New("unexpected end of JSON input"), "padaria.json")
	assert.Equal(t, errx.KindFormat, errx.KindOf(err))
	assert.Contains(t, err.Error(), "malformed catalog document")
}
