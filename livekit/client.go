package livekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const createRoomPath = "/twirp/livekit.RoomService/CreateRoom"

// Room is the server's description of a created room.
type Room struct {
	SID             string `json:"sid"`
	Name            string `json:"name"`
	EmptyTimeout    uint32 `json:"empty_timeout"`
	MaxParticipants uint32 `json:"max_participants"`
}

type createRoomRequest struct {
	Name            string `json:"name"`
	EmptyTimeout    uint32 `json:"empty_timeout,omitempty"`
	MaxParticipants uint32 `json:"max_participants,omitempty"`
}

// RoomClient calls the LiveKit server's Twirp RoomService API. It is
// configured with the same ws:// URL clients connect to; the scheme is
// rewritten to http(s) for API calls, as the official SDKs do.
type RoomClient struct {
	baseURL string
	issuer  *TokenIssuer
	http    *http.Client
}

func NewRoomClient(url string, issuer *TokenIssuer) *RoomClient {
	return &RoomClient{
		baseURL: httpURL(url),
		issuer:  issuer,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateRoom creates a room on the LiveKit server. emptyTimeout is the
// server-side teardown delay once the room has no participants.
func (c *RoomClient) CreateRoom(ctx context.Context, name string, emptyTimeout time.Duration, maxParticipants int) (*Room, error) {
	token, err := c.issuer.adminToken()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(createRoomRequest{
		Name:            name,
		EmptyTimeout:    uint32(emptyTimeout.Seconds()),
		MaxParticipants: uint32(maxParticipants),
	})
	if err != nil {
		return nil, fmt.Errorf("livekit: marshal create room request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createRoomPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("livekit: build create room request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("livekit: create room %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("livekit: create room %q: status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var room Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("livekit: decode create room response: %w", err)
	}
	return &room, nil
}

// httpURL rewrites a LiveKit websocket URL to its HTTP API equivalent.
func httpURL(url string) string {
	url = strings.TrimSuffix(url, "/")
	switch {
	case strings.HasPrefix(url, "ws://"):
		return "http://" + strings.TrimPrefix(url, "ws://")
	case strings.HasPrefix(url, "wss://"):
		return "https://" + strings.TrimPrefix(url, "wss://")
	default:
		return url
	}
}
