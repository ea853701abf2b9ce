package configs

import (
	"os"
	"time"
)

const (
	// CookieName is the session cookie the frontend sends back on every call.
	CookieName = "token"

	// TokenTTL is the session token lifetime.
	TokenTTL = time.Hour

	// BronzePostLimit caps how many posts a Bronze-tier user may hold before
	// the post-ability check starts answering false.
	BronzePostLimit = 5

	// AnnouncementWindow is the rolling window served by GET /announcements.
	AnnouncementWindow = 7 * 24 * time.Hour

	DefaultOrigin = "http://localhost:5173"
	DefaultDBName = "post-portal"
)

// IsProduction switches the cookie attributes: SameSite=None + Secure in
// production, SameSite=Strict without Secure everywhere else. Local frontends
// on plain HTTP need the non-Secure variant.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
