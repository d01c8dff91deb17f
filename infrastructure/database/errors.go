package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
)

// translate maps unique index violations onto core.ErrDuplicateKey. The gorm
// config has TranslateError on, so each dialect reports them as
// gorm.ErrDuplicatedKey.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w: %v", op, core.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
