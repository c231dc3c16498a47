package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== CONFIRMATION CODE ====================

// GenerateConfirmationCode returns an opaque 32-char hex code.
func GenerateConfirmationCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
