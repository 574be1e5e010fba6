package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aura-vc/aura-backend/livekit"
	"github.com/aura-vc/aura-backend/models"
	"github.com/aura-vc/aura-backend/services"
)

type fakeProvider struct {
	err error
}

func (f *fakeProvider) CreateRoom(ctx context.Context, name string, emptyTimeout time.Duration, maxParticipants int) (*livekit.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &livekit.Room{SID: "RM_fake", Name: name}, nil
}

type memStore struct {
	rooms map[string]models.RoomMetadata
}

func newMemStore() *memStore {
	return &memStore{rooms: map[string]models.RoomMetadata{}}
}

func (m *memStore) Save(ctx context.Context, meta *models.RoomMetadata) error {
	m.rooms[meta.RoomID] = *meta
	return nil
}

func (m *memStore) Get(ctx context.Context, roomID string) (*models.RoomMetadata, error) {
	meta, ok := m.rooms[roomID]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func (m *memStore) Delete(ctx context.Context, roomID string) error {
	delete(m.rooms, roomID)
	return nil
}

func (m *memStore) List(ctx context.Context) ([]models.RoomMetadata, error) {
	out := []models.RoomMetadata{}
	for _, meta := range m.rooms {
		out = append(out, meta)
	}
	return out, nil
}

func (m *memStore) RefreshTTL(ctx context.Context, roomID string) error {
	return nil
}

func newTestRouter(provider *fakeProvider, store *memStore, issuer services.TokenMinter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewRoomService(provider, store, issuer)
	rc := NewRoomController(svc, "ws://localhost:7880", "http://localhost:3000")

	router := gin.New()
	api := router.Group("/api")
	api.POST("/token", rc.GetToken)
	api.POST("/room/create", rc.CreateRoom)
	api.GET("/room/:roomId", rc.GetRoom)
	api.DELETE("/room/:roomId", rc.DeleteRoom)
	api.POST("/room/:roomId/refresh", rc.RefreshRoom)
	api.GET("/rooms", rc.ListRooms)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRoomEndpoint(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/room/create", gin.H{"userName": "kim"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp CreateRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "kim's room", resp.RoomTitle)
	require.Equal(t, "", resp.Description)
	require.Equal(t, 10, resp.MaxParticipants)
	require.Equal(t, "kim", resp.UserName)
	require.Equal(t, "ws://localhost:7880", resp.LivekitURL)
	require.Equal(t, "http://localhost:3000/room/"+resp.RoomID, resp.RoomURL)
	require.NotEmpty(t, resp.Token)
}

func TestCreateRoomEndpointValidation(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing userName", gin.H{"roomTitle": "standup"}},
		{"maxParticipants too small", gin.H{"userName": "kim", "maxParticipants": 1}},
		{"maxParticipants too large", gin.H{"userName": "kim", "maxParticipants": 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/room/create", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateRoomEndpointProviderFailure(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(&fakeProvider{err: errors.New("livekit down")}, store, livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/room/create", gin.H{"userName": "kim"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, store.rooms)
}

func TestGetTokenEndpoint(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	// The room was never created; issuance succeeds regardless.
	w := doJSON(router, http.MethodPost, "/api/token", gin.H{"roomId": "room-abc", "userName": "lee"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "ws://localhost:7880", resp.URL)
}

func TestGetTokenEndpointMissingCredentials(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("", ""))

	w := doJSON(router, http.MethodPost, "/api/token", gin.H{"roomId": "room-abc", "userName": "lee"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "not configured")
}

func TestGetTokenEndpointValidation(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/token", gin.H{"userName": "lee"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomEndpoint(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(&fakeProvider{}, store, livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/room/create", gin.H{"userName": "kim", "roomTitle": "standup"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created CreateRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, "/api/room/"+created.RoomID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meta models.RoomMetadata
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
	require.Equal(t, created.RoomID, meta.RoomID)
	require.Equal(t, "standup", meta.RoomTitle)
}

func TestGetRoomEndpointNotFound(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodGet, "/api/room/room-never-created", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "room-never-created")
}

func TestListRoomsEndpoint(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	for _, user := range []string{"kim", "lee"} {
		w := doJSON(router, http.MethodPost, "/api/room/create", gin.H{"userName": user})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RoomListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	require.Len(t, resp.Rooms, 2)
}

func TestDeleteRoomEndpoint(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(&fakeProvider{}, store, livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/room/create", gin.H{"userName": "kim"})
	var created CreateRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodDelete, "/api/room/"+created.RoomID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/room/"+created.RoomID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshRoomEndpoint(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, newMemStore(), livekit.NewTokenIssuer("api-key", "api-secret"))

	w := doJSON(router, http.MethodPost, "/api/room/room-abc/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
