package livekit

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrMissingCredentials is returned when token issuance is attempted
// without a configured API key/secret pair.
var ErrMissingCredentials = errors.New("livekit api key or secret not configured")

const (
	// joinTokenTTL matches the LiveKit SDK default for access tokens.
	joinTokenTTL = 6 * time.Hour

	// adminTokenTTL bounds the server-to-server token used for the
	// CreateRoom API call; it only needs to outlive one request.
	adminTokenTTL = time.Minute
)

// VideoGrant is the LiveKit capability claim embedded in an access token.
type VideoGrant struct {
	Room           string `json:"room,omitempty"`
	RoomJoin       bool   `json:"roomJoin,omitempty"`
	RoomCreate     bool   `json:"roomCreate,omitempty"`
	CanPublish     bool   `json:"canPublish,omitempty"`
	CanSubscribe   bool   `json:"canSubscribe,omitempty"`
	CanPublishData bool   `json:"canPublishData,omitempty"`
}

type videoClaims struct {
	jwt.RegisteredClaims
	Video VideoGrant `json:"video"`
}

// TokenIssuer signs LiveKit access tokens with a shared API key/secret.
// The zero credentials case is checked on every call so that a process
// started without keys fails at issuance time, not at startup.
type TokenIssuer struct {
	apiKey    string
	apiSecret string
}

func NewTokenIssuer(apiKey, apiSecret string) *TokenIssuer {
	return &TokenIssuer{apiKey: apiKey, apiSecret: apiSecret}
}

// JoinToken mints a token letting identity join roomID and publish and
// subscribe to media and data. No check is made that the room exists;
// issuance and room existence are independent concerns here.
func (t *TokenIssuer) JoinToken(roomID, identity string) (string, error) {
	return t.sign(identity, joinTokenTTL, VideoGrant{
		Room:           roomID,
		RoomJoin:       true,
		CanPublish:     true,
		CanSubscribe:   true,
		CanPublishData: true,
	})
}

// adminToken mints a short-lived token authorizing server API calls such
// as room creation.
func (t *TokenIssuer) adminToken() (string, error) {
	return t.sign(t.apiKey, adminTokenTTL, VideoGrant{RoomCreate: true})
}

func (t *TokenIssuer) sign(identity string, ttl time.Duration, grant VideoGrant) (string, error) {
	if t.apiKey == "" || t.apiSecret == "" {
		return "", ErrMissingCredentials
	}

	now := time.Now()
	claims := videoClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.apiKey,
			Subject:   identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Video: grant,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.apiSecret))
}
