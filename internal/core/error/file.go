package errx

import (
	"errors"
	"fmt"
	"io/fs"
)

// WrapIO maps file system errors to the unified Error type. A missing file
// becomes KindNotFound and matches ErrNotFound.
func WrapIO(err error, path string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return New(fmt.Errorf("%w: %s: %w", ErrNotFound, path, err), KindNotFound, NotFoundMessage)
	}

	return New(fmt.Errorf("%s: %w", path, err), KindIO, IOErrorMessage)
}

// WrapFormat wraps a JSON decoding failure for the document at path.
func WrapFormat(err error, path string) error {
	if err == nil {
		return nil
	}
	return New(fmt.Errorf("%s: %w", path, err), KindFormat, FormatErrorMessage)
}
