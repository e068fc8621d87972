package auth

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// AvatarURL returns the Gravatar URL for email: 200px, PG rated, mystery
// man fallback.
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
