package pinning

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// credentials authenticate requests either with a scoped JWT or with the
// legacy key/secret header pair.
type credentials struct {
	apiKey    string
	apiSecret string
	jwt       string
}

func (c credentials) configured() bool {
	return c.jwt != "" || (c.apiKey != "" && c.apiSecret != "")
}

func (c credentials) apply(req *http.Request) {
	if c.jwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.jwt)
		return
	}
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.apiSecret)
}

// checkJWT rejects a token that is malformed or already expired. The signature
// is not verified; only the pinning service holds the key.
func checkJWT(token string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("parse pinning jwt: %w", err)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return fmt.Errorf("pinning jwt expired at %s", claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
