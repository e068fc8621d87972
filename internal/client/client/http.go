package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/client/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClient talks to the friendsdir REST API with resty. It holds no
// credentials; each protected call sets its own bearer token.
type HTTPClient struct {
	http *resty.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &HTTPClient{http: c}
}

func (c *HTTPClient) request(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// do executes r and decodes a 2xx JSON body into out (if non-nil).
func do(r *resty.Request, method, path string, out any) error {
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Execute(method, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return decodeError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// decodeError turns an error body into an APIError. Field-keyed maps become
// Fields; {"error": "..."} becomes Message.
func decodeError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if k == "error" {
			e.Message = s
			continue
		}
		if e.Fields == nil {
			e.Fields = map[string]string{}
		}
		e.Fields[k] = s
	}
	return e
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var u models.User
	if err := do(c.request(ctx, "").SetBody(req), http.MethodPost, "/signup", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Signin(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := do(c.request(ctx, "").SetBody(body), http.MethodPost, "/signin", &out); err != nil {
		return "", err
	}
	if !out.Success || out.Token == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "signin returned no token"}
	}
	return out.Token, nil
}

func (c *HTTPClient) Verify(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	body := map[string]string{"token": token}
	if err := do(c.request(ctx, "").SetBody(body), http.MethodPost, "/verify", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return do(c.request(ctx, ""), http.MethodGet, "/healthz", nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.UserSummary, error) {
	out := []models.UserSummary{}
	if err := do(c.request(ctx, token), http.MethodGet, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TotalUsers(ctx context.Context, token string) (int64, error) {
	var n int64
	if err := do(c.request(ctx, token), http.MethodGet, "/users/total", &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, token string, id int64) (*models.User, error) {
	var u models.User
	if err := do(c.request(ctx, token), http.MethodGet, userPath(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, token string, form models.UserForm) (*models.User, error) {
	var u models.User
	if err := do(c.request(ctx, token).SetBody(form), http.MethodPost, "/users/user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, id int64, changes map[string]any) (*models.User, error) {
	var u models.User
	if err := do(c.request(ctx, token).SetBody(changes), http.MethodPut, userPath(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string, id int64) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := do(c.request(ctx, token), http.MethodDelete, userPath(id), &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token string, id int64) (*models.PasswordReset, error) {
	var out models.PasswordReset
	if err := do(c.request(ctx, token), http.MethodPut, userPath(id)+"/resetpassword", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFriends lists the friends of ownerID; zero asks for the caller's own.
func (c *HTTPClient) ListFriends(ctx context.Context, token string, ownerID int64) ([]models.Friend, error) {
	r := c.request(ctx, token)
	if ownerID != 0 {
		r.SetQueryParam("id", strconv.FormatInt(ownerID, 10))
	}
	out := []models.Friend{}
	if err := do(r, http.MethodGet, "/friends", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateFriend(ctx context.Context, token string, ownerID int64, form models.FriendForm) (*models.Friend, error) {
	body := struct {
		models.FriendForm
		UserID int64 `json:"user_id,omitempty"`
	}{form, ownerID}

	var f models.Friend
	if err := do(c.request(ctx, token).SetBody(body), http.MethodPost, "/friends/friend", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) UpdateFriend(ctx context.Context, token string, id int64, changes map[string]any) (*models.Friend, error) {
	var f models.Friend
	if err := do(c.request(ctx, token).SetBody(changes), http.MethodPut, friendPath(id), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) DeleteFriend(ctx context.Context, token string, id int64) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := do(c.request(ctx, token), http.MethodDelete, friendPath(id), &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func userPath(id int64) string   { return "/users/user/" + strconv.FormatInt(id, 10) }
func friendPath(id int64) string { return "/friends/friend/" + strconv.FormatInt(id, 10) }
