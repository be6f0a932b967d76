// File: utils/auth_session.go
package utils

import (
	"context"
	"fmt"
	"time"
)

const authTokenPrefix = "authtoken:"

// AuthTokenTTL is how long an issued token stays valid server-side.
const AuthTokenTTL = 72 * time.Hour

// StoreAuthToken records a hashed token in the auth cache so it can be
// revoked before its JWT expiry.
func StoreAuthToken(token, userID string) error {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := authTokenPrefix + HashToken(token)
	if err := client.Set(ctx, key, userID, AuthTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store auth token: %w", err)
	}
	return nil
}

// IsAuthTokenActive reports whether the hashed token is still present in the
// auth cache.
func IsAuthTokenActive(token string) bool {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := client.Exists(ctx, authTokenPrefix+HashToken(token)).Result()
	return err == nil && n > 0
}

// RevokeAuthToken removes a token from the auth cache, invalidating it.
func RevokeAuthToken(token string) error {
	client := GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Del(ctx, authTokenPrefix+HashToken(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}
