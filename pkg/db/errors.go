package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var uniqueViolationMarkers = []string{
	"duplicate key value", // postgres
	"unique constraint failed",
	"duplicate entry", // mysql
}

// IsUniqueViolation reports whether the provided error is a unique/primary key
// violation on any of the supported drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether the error is a GORM record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
