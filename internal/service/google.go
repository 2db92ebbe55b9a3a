package service

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrGoogleAuthFailed covers every way a Google credential can be rejected.
var ErrGoogleAuthFailed = errors.New("google credential rejected")

// GoogleProfile is the subset of an ID token payload the login flow uses.
type GoogleProfile struct {
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// CredentialVerifier validates a Google ID token and extracts the profile.
// Abstracted so handler tests can stub the network call.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleProfile, error)
}

// GoogleVerifier validates ID tokens against Google's public keys for the
// configured OAuth client.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a GoogleVerifier bound to one OAuth client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify checks the credential's signature, audience, and expiry, then
// returns the embedded profile. Unverified emails are rejected.
func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (*GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoogleAuthFailed, err)
	}

	profile := &GoogleProfile{
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if profile.Email == "" || !profile.EmailVerified {
		return nil, fmt.Errorf("%w: unverified email", ErrGoogleAuthFailed)
	}
	return profile, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
