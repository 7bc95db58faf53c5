package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/craftconnect/internal/client/client"
	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/client/services"
	"github.com/dmitrijs2005/craftconnect/internal/client/sessionstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annUser = `{"user_id":"u1","name":"Ann","email":"ann@example.com"}`

type testEnv struct {
	app   *App
	out   *bytes.Buffer
	store *sessionstore.MemoryStore
	mgr   *services.SessionManager
}

// newTestEnv wires an App against an httptest backend the same way main does.
func newTestEnv(t *testing.T, mux *http.ServeMux, input string) *testEnv {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := client.NewHTTPClient(srv.URL)
	store := sessionstore.NewMemoryStore(nil)
	mgr := services.NewSessionManager(api, store, nil)
	api.Bind(mgr, mgr.Invalidate)

	out := &bytes.Buffer{}
	app := &App{
		session:   mgr,
		api:       api,
		profiles:  services.NewProfileService(api, mgr),
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       out,
		lastState: services.StateRestoring,
	}
	return &testEnv{app: app, out: out, store: store, mgr: mgr}
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, e.store.Save(context.Background(), "T", models.MustUser(annUser)))
	e.mgr.Restore(context.Background())
	require.True(t, e.mgr.Session().IsAuthenticated)
}

func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origText, origPass, origMulti := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origText, origPass, origMulti
	})

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) {
		return "hand thrown stoneware", nil
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestApp_LoginSuccessAnnouncesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "ann@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])
		writeJSON(w, http.StatusOK, `{"access_token":"T","token_type":"bearer","user":`+annUser+`}`)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())
	env.mgr.Subscribe(env.app.onSessionChange)
	env.app.lastState = services.StateAnonymous

	stubInputs(t, []string{"ann@example.com"}, "secret")
	require.NoError(t, env.app.Login(context.Background()))

	assert.Contains(t, env.out.String(), "Signed in as Ann")
	assert.Equal(t, "(Ann)", env.app.getStatus())

	entry, err := env.store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "T", entry.Token)
}

func TestApp_LoginBadCredentialsPrintedInline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Invalid email or password"}`)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())

	stubInputs(t, []string{"ann@example.com"}, "wrong")
	require.NoError(t, env.app.Login(context.Background()))

	assert.Equal(t, "Invalid email or password\n", env.out.String())
	assert.False(t, env.app.isLoggedIn())
	assert.Equal(t, 0, env.store.Len())
}

func TestApp_RegisterSendsOptionalLocation(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, `{"access_token":"T","user":`+annUser+`}`)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())

	stubInputs(t, []string{"ann@example.com", "Ann", ""}, "secret")
	require.NoError(t, env.app.Register(context.Background()))

	assert.Contains(t, env.out.String(), "Success!")
	assert.Equal(t, "Ann", got["name"])
	assert.NotContains(t, got, "location")
	assert.True(t, env.app.isLoggedIn())
}

func TestApp_LogoutAndWhoAmI(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux(), "")
	env.signIn(t)

	require.NoError(t, env.app.WhoAmI(context.Background()))
	assert.Contains(t, env.out.String(), "User:    Ann")
	assert.Contains(t, env.out.String(), "User ID: u1")

	env.out.Reset()
	require.NoError(t, env.app.Logout(context.Background()))
	assert.False(t, env.app.isLoggedIn())
	assert.Equal(t, 0, env.store.Len())

	require.NoError(t, env.app.Logout(context.Background()))
	require.NoError(t, env.app.WhoAmI(context.Background()))
	assert.Equal(t, "Not logged in\nNot logged in\n", env.out.String())
}

func TestApp_ProductsListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "public", r.URL.Query().Get("status"))
		assert.Equal(t, "pottery", r.URL.Query().Get("category"))
		writeJSON(w, http.StatusOK, `{"products":[
			{"product_id":"p1","title":"Blue vase","status":"public","likes_count":3,"pricing":{"materials_cost":5,"labor_hours":2,"final_price":42.5}},
			{"product_id":"p2","title":"Bowl","status":"public"}
		],"total":5,"page":1,"has_more":true}`)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())

	require.NoError(t, env.app.Products(context.Background(), []string{"public", "pottery"}))

	out := env.out.String()
	assert.Contains(t, out, "Blue vase")
	assert.Contains(t, out, "42.50")
	assert.Contains(t, out, "... 2 of 5 shown")

	err := env.app.Products(context.Background(), []string{"a", "b", "c"})
	var usage errUsage
	require.ErrorAs(t, err, &usage)
}

func TestApp_ProductMarksOwnListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/p1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"product_id":"p1","user_id":"u1","title":"Blue vase","category":"pottery","status":"public"}`)
	})
	env := newTestEnv(t, mux, "")
	env.signIn(t)

	require.NoError(t, env.app.Product(context.Background(), []string{"p1"}))
	assert.True(t, strings.HasPrefix(env.out.String(), "Blue vase (yours)\n"))
}

func TestApp_ExpiredSessionIsReportedAndDropped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`)
	})
	env := newTestEnv(t, mux, "products\nexit\n")
	env.signIn(t)
	env.app.lastState = services.StateAuthenticated
	env.mgr.Subscribe(env.app.onSessionChange)
	silencePrintln(t)

	runREPL(context.Background(), env.app, env.app.getStatus, bufio.NewScanner(env.app.reader))

	out := env.out.String()
	assert.Contains(t, out, "Signed out")
	assert.Contains(t, out, "session expired, please log in again")
	assert.False(t, env.app.isLoggedIn())
	assert.Equal(t, 0, env.store.Len())
}

func TestApp_DeleteNeedsLoginAndConfirmation(t *testing.T) {
	deleted := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/products/p1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted++
		w.WriteHeader(http.StatusNoContent)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())

	err := env.app.Delete(context.Background(), []string{"p1"})
	require.ErrorIs(t, err, services.ErrNotAuthenticated)

	env.signIn(t)
	stubInputs(t, []string{"n", "y"}, "")

	require.NoError(t, env.app.Delete(context.Background(), []string{"p1"}))
	require.NoError(t, env.app.Delete(context.Background(), []string{"p1"}))

	assert.Equal(t, "Cancelled\nDeleted\n", env.out.String())
	assert.Equal(t, 1, deleted)
}

func TestApp_PriceUsageAndSuggestion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pricing/suggest", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.InDelta(t, 12.5, body["materials_cost"], 0.001)
		assert.Equal(t, "pottery", body["category"])
		writeJSON(w, http.StatusOK, `{"suggested_price":60,"min_price":50,"max_price":70}`)
	})
	env := newTestEnv(t, mux, "")
	env.mgr.Restore(context.Background())

	err := env.app.Price(context.Background(), []string{"abc", "2", "pottery"})
	var usage errUsage
	require.ErrorAs(t, err, &usage)

	env.app.reportError(err)
	assert.Equal(t, "usage: price <materials_cost> <labor_hours> <category>\n", env.out.String())

	env.out.Reset()
	require.NoError(t, env.app.Price(context.Background(), []string{"12.5", "2", "pottery"}))
	assert.Contains(t, env.out.String(), "Suggested price: 60.00")
	assert.Contains(t, env.out.String(), "Range: 50.00 - 70.00")
}

func TestApp_AnalyzeUploadsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/copilot/analyze", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		f, hdr, err := r.FormFile("image_file")
		if assert.NoError(t, err) {
			defer f.Close()
			assert.Equal(t, "vase.jpg", hdr.Filename)
		}
		writeJSON(w, http.StatusOK, `{"status":"success","gcs_uri":"gs://b/vase.jpg","suggested_title":"Blue vase","confidence_score":0.9}`)
	})
	env := newTestEnv(t, mux, "")
	env.signIn(t)

	path := filepath.Join(t.TempDir(), "vase.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o600))

	require.NoError(t, env.app.Analyze(context.Background(), []string{path}))
	assert.Contains(t, env.out.String(), "Title:      Blue vase")
	assert.Contains(t, env.out.String(), "Confidence: 90%")
}

func TestApp_StoryUsesProfile(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/storyteller/generate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, `{"story":"Once upon a kiln."}`)
	})
	env := newTestEnv(t, mux, "")
	env.signIn(t)
	stubInputs(t, nil, "")

	require.NoError(t, env.app.Story(context.Background(), []string{"Blue", "vase"}))

	assert.Equal(t, "Once upon a kiln.\n", env.out.String())
	assert.Equal(t, "Blue vase", got["title"])
	assert.Equal(t, "Ann", got["artisan_name"])
}

func TestApp_ProfileUpdatesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		writeJSON(w, http.StatusOK, `{"user_id":"u1","name":"Ann K.","email":"ann@example.com"}`)
	})
	env := newTestEnv(t, mux, "")
	env.signIn(t)

	require.NoError(t, env.app.Profile(context.Background(), []string{"Ann", "K."}))

	assert.Contains(t, env.out.String(), "Profile updated")
	assert.Equal(t, "(Ann K.)", env.app.getStatus())

	entry, err := env.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T", entry.Token)
	assert.Equal(t, "u1", entry.User.ID())
}

func TestApp_ReportError(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux(), "")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", &client.AuthError{Detail: "expired"}, "session expired, please log in again\n"},
		{"not authenticated", services.ErrNotAuthenticated, "please log in first\n"},
		{"unavailable", &client.NetworkError{Method: "GET", Path: "/products", Err: io.ErrUnexpectedEOF}, "backend unavailable, try again later\n"},
		{"api", &client.APIError{Status: 404, Detail: "Product not found"}, "error: Product not found\n"},
		{"plain", io.ErrClosedPipe, "error: io: read/write on closed pipe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.out.Reset()
			env.app.reportError(tt.err)
			assert.Equal(t, tt.want, env.out.String())
		})
	}
}

func TestApp_RunRestoresPersistedSession(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux(), "whoami\nlogout\nexit\n")
	require.NoError(t, env.store.Save(context.Background(), "T", models.MustUser(annUser)))
	silencePrintln(t)

	env.app.Run(context.Background())

	out := env.out.String()
	assert.Contains(t, out, "Welcome to CraftConnect CLI")
	assert.Contains(t, out, "Signed in as Ann")
	assert.Contains(t, out, "User ID: u1")
	assert.Contains(t, out, "Signed out")
	assert.Equal(t, 0, env.store.Len())
}
