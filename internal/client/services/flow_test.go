package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
)

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type backend struct {
	*httptest.Server
	signupPrefs []string
	categories  string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Error(err)
		}
		prefs, ok := body["preferences"].([]any)
		assert.True(t, ok, "preferences must be a JSON array")
		b.signupPrefs = make([]string, 0, len(prefs))
		for _, p := range prefs {
			b.signupPrefs = append(b.signupPrefs, p.(string))
		}
		reply(w, http.StatusCreated, map[string]any{"success": true, "message": "OTP sent"})
	})
	mux.HandleFunc("POST /api/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var req models.OTPVerification
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.OTP != "123456" {
			reply(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid or expired OTP"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "opaque", Path: "/"})
		reply(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{
			"_id": "u1", "email": req.Email, "firstName": "Ada", "preferences": []string{"music"},
		}})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Session store down"})
	})
	mux.HandleFunc("GET /api/article/getarticles-by-preferences", func(w http.ResponseWriter, r *http.Request) {
		b.categories = r.URL.Query().Get("categories")
		reply(w, http.StatusOK, map[string]any{"success": true, "articles": []any{}})
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func TestFlow_SignupVerifyLogout(t *testing.T) {
	ctx := context.Background()
	srv := newBackend(t)

	api, err := client.NewHTTPClient(client.Options{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second})
	require.NoError(t, err)

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	persister := session.NewSQLitePersister(db)

	st := session.NewStore(session.WithPersister(persister))
	auth := NewAuthService(api, st, nil)
	articles := NewArticleService(api, st, nil)

	// signup without preferences
	out, err := auth.Signup(ctx, signupData())
	require.NoError(t, err)
	assert.Equal(t, GoVerify, out)
	assert.Equal(t, []string{}, srv.signupPrefs)

	_, err = auth.VerifyOTP(ctx, "", "000000")
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired OTP. Please try again.", st.State().OTP.Error)

	out, err = auth.VerifyOTP(ctx, "", "123456")
	require.NoError(t, err)
	assert.Equal(t, GoHome, out)
	assert.NotEmpty(t, api.SessionCookies())

	snap, err := persister.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "u1", snap.User.ID)
	assert.True(t, snap.OTPVerified)

	var f feed.Feed
	require.NoError(t, articles.LoadFeed(ctx, &f))
	assert.Equal(t, "music", srv.categories)

	// the server fails the logout; the local session ends anyway
	out, err = auth.Logout(ctx)
	require.Error(t, err)
	assert.Equal(t, GoLogin, out)
	assert.Nil(t, st.State().User)
	assert.Equal(t, "Session store down", st.State().Error)
	assert.Empty(t, api.SessionCookies())

	snap, err = persister.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}
