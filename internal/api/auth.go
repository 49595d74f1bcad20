package api

import (
	"net/http"

	"github.com/taskdeck/tui-go/internal/model"
)

// authResponse is the shape returned by the register and login endpoints
type authResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and persists the returned session. A
// failure leaves any existing session untouched.
func (c *Client) Register(name, email, password string) (*model.User, error) {
	var resp authResponse
	err := c.do(http.MethodPost, "/api/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(&resp.User, resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates an existing account and persists the returned session
func (c *Client) Login(email, password string) (*model.User, error) {
	var resp authResponse
	err := c.do(http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(&resp.User, resp.Token); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
