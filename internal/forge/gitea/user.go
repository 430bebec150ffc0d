package gitea

import (
	"context"
	"net/url"

	"gradeline/internal/domain"

	"github.com/go-resty/resty/v2"
)

type createUserRequest struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	FullName           string `json:"full_name,omitempty"`
	Password           string `json:"password"`
	MustChangePassword bool   `json:"must_change_password"`
	SendNotify         bool   `json:"send_notify"`
}

func (c *Client) CreateUser(ctx context.Context, user domain.ForgeUser) error {
	body := createUserRequest{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Password: user.Password,
	}
	return c.call(ctx, resty.MethodPost, "/admin/users", body, nil, user.Username, domain.ExternalNotFound)
}

func (c *Client) UserExists(ctx context.Context, username string) (bool, error) {
	err := c.call(ctx, resty.MethodGet, "/users/"+url.PathEscape(username), nil, nil, username, domain.ExternalUserNotFound)
	if err != nil {
		if domain.IsExternalKind(err, domain.ExternalUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
