package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aura-vc/aura-backend/livekit"
	"github.com/aura-vc/aura-backend/models"
)

var (
	ErrRoomNotFound           = errors.New("room not found")
	ErrInvalidMaxParticipants = errors.New("maxParticipants must be between 2 and 50")
)

const (
	defaultMaxParticipants = 10
	minMaxParticipants     = 2
	maxMaxParticipants     = 50

	// emptyRoomTimeout is how long the media server keeps an empty room
	// alive before tearing it down on its own.
	emptyRoomTimeout = 5 * time.Minute
)

// RoomProvider creates rooms on the external media server.
type RoomProvider interface {
	CreateRoom(ctx context.Context, name string, emptyTimeout time.Duration, maxParticipants int) (*livekit.Room, error)
}

// MetadataStore persists room metadata with automatic expiry.
type MetadataStore interface {
	Save(ctx context.Context, meta *models.RoomMetadata) error
	Get(ctx context.Context, roomID string) (*models.RoomMetadata, error)
	Delete(ctx context.Context, roomID string) error
	List(ctx context.Context) ([]models.RoomMetadata, error)
	RefreshTTL(ctx context.Context, roomID string) error
}

// TokenMinter issues signed join tokens for a (room, identity) pair.
type TokenMinter interface {
	JoinToken(roomID, identity string) (string, error)
}

// RoomService orchestrates room creation across the media server, the
// metadata store and the token issuer, and serves directory reads.
type RoomService struct {
	provider RoomProvider
	store    MetadataStore
	tokens   TokenMinter
}

func NewRoomService(provider RoomProvider, store MetadataStore, tokens TokenMinter) *RoomService {
	return &RoomService{provider: provider, store: store, tokens: tokens}
}

// CreateRoomParams carries the validated creation input. A zero
// MaxParticipants means "use the default".
type CreateRoomParams struct {
	UserName        string
	RoomTitle       string
	Description     string
	MaxParticipants int
}

// CreatedRoom is the composite result of a successful creation.
type CreatedRoom struct {
	Metadata models.RoomMetadata
	Token    string
}

// CreateRoom creates the room on the media server, persists its metadata
// and mints a join token for the creator, in that order. Provider
// failure aborts the whole operation; a persistence failure after the
// provider call leaves the remote room to the server's empty-room
// teardown — there is no compensating deletion.
func (s *RoomService) CreateRoom(ctx context.Context, params CreateRoomParams) (*CreatedRoom, error) {
	max := params.MaxParticipants
	if max == 0 {
		max = defaultMaxParticipants
	}
	if max < minMaxParticipants || max > maxMaxParticipants {
		return nil, ErrInvalidMaxParticipants
	}

	title := params.RoomTitle
	if title == "" {
		title = fmt.Sprintf("%s's room", params.UserName)
	}

	roomID := "room-" + uuid.NewString()

	if _, err := s.provider.CreateRoom(ctx, roomID, emptyRoomTimeout, max); err != nil {
		return nil, fmt.Errorf("create room %s: %w", roomID, err)
	}

	meta := models.RoomMetadata{
		RoomID:          roomID,
		RoomTitle:       title,
		Description:     params.Description,
		MaxParticipants: max,
		CreatedBy:       params.UserName,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Save(ctx, &meta); err != nil {
		return nil, fmt.Errorf("create room %s: %w", roomID, err)
	}

	token, err := s.tokens.JoinToken(roomID, params.UserName)
	if err != nil {
		return nil, fmt.Errorf("create room %s: issue token: %w", roomID, err)
	}

	logrus.WithFields(logrus.Fields{
		"roomId":    roomID,
		"createdBy": params.UserName,
	}).Info("room created")

	return &CreatedRoom{Metadata: meta, Token: token}, nil
}

// GetRoom returns the metadata record for roomID. A missing or expired
// record yields ErrRoomNotFound; store failures are returned as-is.
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*models.RoomMetadata, error) {
	meta, err := s.store.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, ErrRoomNotFound
	}
	return meta, nil
}

// ListRooms returns every non-expired metadata record.
func (s *RoomService) ListRooms(ctx context.Context) ([]models.RoomMetadata, error) {
	return s.store.List(ctx)
}

// JoinToken mints a join token for identity in roomID. No existence
// check is made against the store: the metadata cache can expire while
// the room is still live on the media server, so tokens are issued
// unconditionally.
func (s *RoomService) JoinToken(roomID, identity string) (string, error) {
	token, err := s.tokens.JoinToken(roomID, identity)
	if err != nil {
		return "", fmt.Errorf("issue token for room %s: %w", roomID, err)
	}
	return token, nil
}

// DeleteRoom removes the metadata record. Deleting an unknown room is a
// no-op; the remote room itself is left to the provider's lifecycle.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID string) error {
	return s.store.Delete(ctx, roomID)
}

// TouchRoom restarts the metadata retention window for roomID.
func (s *RoomService) TouchRoom(ctx context.Context, roomID string) error {
	return s.store.RefreshTTL(ctx, roomID)
}
