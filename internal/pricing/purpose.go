package pricing

import (
	"fmt"
	"strings"
)

// Purpose selects the platform rate tier for a payment page.
type Purpose string

const (
	PurposePersonal Purpose = "personal"
	PurposeService  Purpose = "service"
)

var Purposes = []Purpose{PurposePersonal, PurposeService}

// ParsePurpose accepts the purpose names case-insensitively. An empty
// string selects PurposePersonal.
func ParsePurpose(s string) (Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PurposePersonal):
		return PurposePersonal, nil
	case string(PurposeService):
		return PurposeService, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPurpose, s)
}
