package webserver_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/forumkit/massinvite/internal/webserver"
	"github.com/forumkit/massinvite/internal/webserver/infrastructure"
	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Front page loads successfully", "/", http.StatusOK},
		{"Campaign listing loads successfully", "/settings/massinvite", http.StatusOK},
		{"New campaign form loads successfully", "/settings/massinvite/new", http.StatusOK},
		{"Registration form redirects away without an invitation", "/entry/register", http.StatusFound},
		{"Server returns not found for a non-existent URL", "/nowhere", http.StatusNotFound},
	}

	db := infrastructure.Connect(":memory:")
	app := bootstrapApp(db)

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			response, err := getRequest(nil, app, tcase.url, t)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB) *fiber.App {
	webserverConfig := webserver.Config{
		SessionSecret:     []byte("test-session-secret"),
		SessionTimeout:    24 * time.Hour,
		MinPasswordLength: 5,
	}

	controllers := webserver.SetupControllers(webserverConfig, db)
	return webserver.New(webserverConfig, controllers)
}

func getRequest(cookie *http.Cookie, app *fiber.App, route string, t *testing.T) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, route, nil)
	if err != nil {
		return nil, err
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func postRequest(data url.Values, cookie *http.Cookie, app *fiber.App, route string, t *testing.T) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, route, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func sessionCookie(response *http.Response) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	return nil
}

func mustRedirectTo(response *http.Response, location string, t *testing.T) {
	t.Helper()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected status %d, got %d", http.StatusFound, response.StatusCode)
	}
	if actual := response.Header.Get("Location"); actual != location {
		t.Fatalf("Expected redirect to %s, got %s", location, actual)
	}
}

// mustShowMessage loads the front page with the given session cookie and
// asserts the transient message is displayed, returning the refreshed cookie
// so callers can check the message does not show twice.
func mustShowMessage(app *fiber.App, cookie *http.Cookie, text string, t *testing.T) *http.Cookie {
	t.Helper()

	response, err := getRequest(cookie, app, "/", t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(doc.Find(".transient-messages").Text(), text) {
		t.Errorf("Expected message %q on the front page", text)
	}

	return sessionCookie(response)
}

func readBody(response *http.Response, t *testing.T) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return string(body)
}
