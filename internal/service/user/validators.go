package user

import "strings"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidUserID(id int64) bool {
	return id > 0
}
