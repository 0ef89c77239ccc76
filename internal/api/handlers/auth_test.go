package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("successful registration redirects to login", func(t *testing.T) {
		client := ts.NewNoRedirectClient(t)

		resp, err := client.PostForm(ts.URL("/register"), url.Values{
			"name":     {"Alice"},
			"email":    {"a@x.com"},
			"password": {"pw123"},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertRedirect(t, resp, "/login")
		assert.Equal(t, int64(1), ts.DB.CountRows(t, &domain.User{}))
	})

	t.Run("duplicate email is rejected without a new row", func(t *testing.T) {
		client := ts.NewNoRedirectClient(t)

		resp, err := client.PostForm(ts.URL("/register"), url.Values{
			"name":     {"Imposter"},
			"email":    {"A@X.com"}, // same address, different case
			"password": {"pw456"},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertRedirect(t, resp, "/register")
		assert.Equal(t, int64(1), ts.DB.CountRows(t, &domain.User{}))
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		client := ts.NewNoRedirectClient(t)

		resp, err := client.PostForm(ts.URL("/register"), url.Values{
			"name":     {""},
			"email":    {"empty@x.com"},
			"password": {"pw123"},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertRedirect(t, resp, "/register")
	})
}

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, password := testutil.NewUserBuilder().
		WithName("Alice").
		WithEmail("login@x.com").
		Build(t, ts.DB.DB)

	t.Run("valid credentials establish a session", func(t *testing.T) {
		client := ts.NewNoRedirectClient(t)

		resp, err := client.PostForm(ts.URL("/login"), url.Values{
			"email":    {user.Email},
			"password": {password},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertRedirect(t, resp, "/")

		var sessionCookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "session" {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie, "login should set the session cookie")
		assert.NotEmpty(t, sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)

		sess, ok := ts.Sessions.Resolve(sessionCookie.Value)
		require.True(t, ok)
		assert.Equal(t, user.ID, sess.UserID)
		assert.Equal(t, user.Name, sess.Name)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		for _, form := range []url.Values{
			{"email": {user.Email}, "password": {"wrong"}},
			{"email": {"ghost@x.com"}, "password": {password}},
		} {
			client := ts.NewNoRedirectClient(t)

			resp, err := client.PostForm(ts.URL("/login"), form)
			require.NoError(t, err)
			resp.Body.Close()

			testutil.AssertRedirect(t, resp, "/login")
			for _, c := range resp.Cookies() {
				assert.NotEqual(t, "session", c.Name, "failed login must not set a session")
			}
		}
	})

	t.Run("invalid credentials show a generic message", func(t *testing.T) {
		client := ts.NewClient(t)

		resp, err := client.PostForm(ts.URL("/login"), url.Values{
			"email":    {"ghost@x.com"},
			"password": {"whatever"},
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertBodyContains(t, resp, "Invalid email or password.")
	})
}

func TestLogout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	testutil.NewUserBuilder().WithEmail("logout@x.com").BuildAndLogin(t, ts, client)

	// session works before logout
	resp, err := client.Get(ts.URL("/profile"))
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp, err = client.Get(ts.URL("/logout"))
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK) // followed redirect to /

	// and is gone afterwards
	noRedirect := ts.NewNoRedirectClient(t)
	noRedirect.Jar = client.Jar
	resp, err = noRedirect.Get(ts.URL("/profile"))
	require.NoError(t, err)
	resp.Body.Close()
	testutil.AssertRedirect(t, resp, "/login")
}

func TestProfile(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("requires a session", func(t *testing.T) {
		client := ts.NewNoRedirectClient(t)

		resp, err := client.Get(ts.URL("/profile"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertRedirect(t, resp, "/login")
	})

	t.Run("shows the caller's own record", func(t *testing.T) {
		client := ts.NewClient(t)
		testutil.NewUserBuilder().
			WithName("Profile User").
			WithEmail("profile@x.com").
			BuildAndLogin(t, ts, client)

		resp, err := client.Get(ts.URL("/profile"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		body := testutil.ReadBody(t, resp)
		assert.Contains(t, body, "Profile User")
		assert.Contains(t, body, "profile@x.com")
	})
}

func TestLoggedInUserSkipsAuthForms(t *testing.T) {
	ts := testutil.NewTestServer(t)

	client := ts.NewClient(t)
	testutil.NewUserBuilder().WithEmail("skips@x.com").BuildAndLogin(t, ts, client)

	noRedirect := ts.NewNoRedirectClient(t)
	noRedirect.Jar = client.Jar

	for _, path := range []string{"/register", "/login"} {
		resp, err := noRedirect.Get(ts.URL(path))
		require.NoError(t, err)
		resp.Body.Close()
		testutil.AssertRedirect(t, resp, "/")
	}
}
