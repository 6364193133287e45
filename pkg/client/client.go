// Package client is a Go client for the ResolveNow API. It plays the role of
// the original browser HTTP layer: a request interceptor attaches the bearer
// token from the session store, and every failure, transport or HTTP, is
// normalized into an *APIError carrying a single human-readable message.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// APIError is the uniform failure shape surfaced to callers.
type APIError struct {
	StatusCode int    // zero when the request never reached the server
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrNotLoggedIn is returned when a protected call is made without a session.
var ErrNotLoggedIn = errors.New("not logged in")

// Complaint mirrors the complaint records returned by the API.
type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// ComplaintInput is the payload for SubmitComplaint.
type ComplaintInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// Client talks to a ResolveNow server. The zero value is not usable; build
// one with New.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
}

// bearerTransport injects the current session token into each request, the
// way the original request interceptor did. Requests without a session pass
// through untouched.
type bearerTransport struct {
	store *SessionStore
	next  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if sess, err := t.store.Load(); err == nil && sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	return t.next.RoundTrip(req)
}

// New builds a client for the server at baseURL, persisting sessions in store.
func New(baseURL string, store *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &bearerTransport{
				store: store,
				next:  http.DefaultTransport,
			},
		},
	}
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(name, email, password string) (*UserInfo, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp struct {
		User UserInfo `json:"user"`
	}
	if err := c.do(http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and persists the returned session.
func (c *Client) Login(email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string   `json:"token"`
		User  UserInfo `json:"user"`
	}
	if err := c.do(http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	sess := Session{Token: resp.Token, User: resp.User}
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Logout clears the persisted session. The server holds no session state, so
// there is nothing to call remotely.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// CurrentSession returns the persisted session, or nil when logged out.
func (c *Client) CurrentSession() (*Session, error) {
	return c.store.Load()
}

// SubmitComplaint creates a complaint owned by the logged-in user.
func (c *Client) SubmitComplaint(input ComplaintInput) (*Complaint, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var created Complaint
	if err := c.do(http.MethodPost, "/api/complaints", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// MyComplaints lists the logged-in user's complaints, newest first.
func (c *Client) MyComplaints() ([]Complaint, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var complaints []Complaint
	if err := c.do(http.MethodGet, "/api/complaints/my", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// AllComplaints lists every complaint, newest first. Admin only.
func (c *Client) AllComplaints() ([]Complaint, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	var complaints []Complaint
	if err := c.do(http.MethodGet, "/api/complaints", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (c *Client) requireSession() error {
	sess, err := c.store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNotLoggedIn
	}
	return nil
}

// do performs a request and normalizes every failure path into *APIError,
// mirroring the original response interceptor: transport failures become a
// connectivity message, non-2xx responses surface the server's message.
func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "error setting up request"}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: "error setting up request"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: "no response from server, please check your connection"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "no response from server, please check your connection"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "unexpected response from server"}
		}
	}
	return nil
}

// errorMessage extracts the server's {"message": ...} envelope, accepting an
// {"error": ...} key from older deployments, falling back to a generic
// message when the body is not in the expected shape.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return "an error occurred"
}

var _ fmt.Stringer = (*Session)(nil)

// String renders the session owner for CLI display.
func (s *Session) String() string {
	return fmt.Sprintf("%s <%s> (%s)", s.User.Name, s.User.Email, s.User.Role)
}
