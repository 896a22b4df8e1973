package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"goose-bumps-backend/database"
	"goose-bumps-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSolana struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (m *mockSolana) Mint(_ context.Context, pubkey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, pubkey)
	return m.err
}

func (m *mockSolana) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type transferCall struct {
	toAddress string
	tokenID   uint32
}

type mockWeb3 struct {
	mu    sync.Mutex
	calls []transferCall
	hash  string
	err   error
}

func (m *mockWeb3) TransferNFT(_ context.Context, toAddress string, tokenID uint32) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, transferCall{toAddress: toAddress, tokenID: tokenID})
	if m.err != nil {
		return "", m.err
	}
	return m.hash, nil
}

type testEnv struct {
	router *gin.Engine
	store  *database.UserStore
	solana *mockSolana
	web3   *mockWeb3
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := database.NewUserStore()
	solana := &mockSolana{}
	web3 := &mockWeb3{hash: "0xabc123"}
	router := SetupRouter(store, solana, web3, zap.NewNop().Sugar())
	return &testEnv{router: router, store: store, solana: solana, web3: web3}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createUser(t *testing.T, solanaToken string) model.User {
	t.Helper()
	w := e.do(t, http.MethodPost, "/user", gin.H{"solanaToken": solanaToken})
	require.Equal(t, http.StatusOK, w.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func assertCORSHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	h := w.Header()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, PATCH, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
}

func TestCreateUserThenGetRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "token")
	require.NoError(t, uuid.Validate(user.UserID))
	assert.Equal(t, "token", user.SolanaToken)
	assert.Equal(t, []string{}, user.ChapterIDs)

	w := env.do(t, http.MethodGet, "/user/"+user.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, user, got)
	assertCORSHeaders(t, w)

	// chapterIds must serialize as an empty array, not null.
	assert.Contains(t, w.Body.String(), `"chapterIds":[]`)
}

func TestGetUser_Unknown(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/user/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertCORSHeaders(t, w)
}

func TestGetUser_MalformedUUID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/user/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertCORSHeaders(t, w)
}

func TestPutUserProgress_AppendsChapters(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "token")

	w := env.do(t, http.MethodPut, "/userprogress", gin.H{
		"userId": user.UserID, "challengeId": "c1", "chapterId": "ch-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"ch-1"}, got.ChapterIDs)

	w = env.do(t, http.MethodPut, "/userprogress", gin.H{
		"userId": user.UserID, "challengeId": "c1", "chapterId": "ch-2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"ch-1", "ch-2"}, got.ChapterIDs)
}

func TestPutUserProgress_DuplicatesPreserved(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "token")

	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodPut, "/userprogress", gin.H{
			"userId": user.UserID, "challengeId": "c1", "chapterId": "ch-1",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, "/user/"+user.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"ch-1", "ch-1", "ch-1"}, got.ChapterIDs)
}

func TestPutUserProgress_UnknownUserLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t)
	known := env.createUser(t, "token")

	w := env.do(t, http.MethodPut, "/userprogress", gin.H{
		"userId": uuid.NewString(), "challengeId": "c1", "chapterId": "ch-1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertCORSHeaders(t, w)

	w = env.do(t, http.MethodGet, "/user/"+known.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.ChapterIDs)
}

func TestMintNFT_UnknownUserIsSilentlyIgnored(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/mint-nft", gin.H{
		"userId": uuid.NewString(), "challengeId": "c",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 0, env.solana.callCount())
	assertCORSHeaders(t, w)
}

func TestMintNFT_KnownUserTriggersMintWithStoredToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "stored-solana-token")

	w := env.do(t, http.MethodPost, "/mint-nft", gin.H{
		"userId": user.UserID, "challengeId": "c",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	require.Equal(t, 1, env.solana.callCount())
	assert.Equal(t, "stored-solana-token", env.solana.calls[0])
}

func TestMintNFT_AdapterFailureIsBadGateway(t *testing.T) {
	env := newTestEnv(t)
	env.solana.err = assert.AnError
	user := env.createUser(t, "token")

	w := env.do(t, http.MethodPost, "/mint-nft", gin.H{
		"userId": user.UserID, "challengeId": "c",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assertCORSHeaders(t, w)
}

func TestTransferNFT_ExplicitTokenID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/transfer-nft", gin.H{
		"toAddress": "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe",
		"tokenId":   7,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transactionHash":"0xabc123"}`, w.Body.String())
	require.Len(t, env.web3.calls, 1)
	assert.Equal(t, uint32(7), env.web3.calls[0].tokenID)
	assert.Equal(t, "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe", env.web3.calls[0].toAddress)
}

func TestTransferNFT_DefaultsToTokenCounter(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/transfer-nft", gin.H{
		"toAddress": "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.web3.calls, 1)
	assert.Equal(t, uint32(0), env.web3.calls[0].tokenID)
}

func TestTransferNFT_AdapterFailureIsBadGateway(t *testing.T) {
	env := newTestEnv(t)
	env.web3.err = assert.AnError

	w := env.do(t, http.MethodPost, "/transfer-nft", gin.H{
		"toAddress": "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assertCORSHeaders(t, w)
}

func TestOptionsPreflights(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/user", "/userprogress", "/mint-nft", "/transfer-nft"} {
		w := env.do(t, http.MethodOptions, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, "OPTIONS %s", path)
		assert.Empty(t, w.Body.String(), "OPTIONS %s", path)
		assertCORSHeaders(t, w)
	}
}

func TestMalformedJSONIsRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertCORSHeaders(t, w)
}

func TestConcurrentProgressUpdatesLoseNoChapters(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "token")

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			w := env.do(t, http.MethodPut, "/userprogress", gin.H{
				"userId": user.UserID, "challengeId": "c1", "chapterId": "ch-1",
			})
			if w.Code != http.StatusOK {
				t.Errorf("unexpected status %d", w.Code)
			}
		}()
	}
	wg.Wait()

	w := env.do(t, http.MethodGet, "/user/"+user.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.ChapterIDs, workers)
}
