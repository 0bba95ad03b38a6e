package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"team-management-backend/internal/auth"
	"team-management-backend/internal/config"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"

	"golang.org/x/oauth2"
)

// UserDetails is the identity of a user as known by the user directory
type UserDetails struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UserDirectory resolves user ids to identities
type UserDirectory interface {
	GetUser(ctx context.Context, userID uint) (*UserDetails, error)
}

// NewUserDirectory builds the directory selected by IDENTITY_PROVIDER.
// Provider none yields a nil directory: memberships carry no identity and
// the user lookup endpoint is not served.
func NewUserDirectory(cfg *config.Config) (UserDirectory, error) {
	switch cfg.IdentityProvider {
	case config.IdentityProviderHTTP:
		return NewHTTPUserDirectory(cfg), nil
	case config.IdentityProviderLDAP:
		return NewLDAPUserDirectory(cfg), nil
	case config.IdentityProviderNone, "":
		return nil, nil
	default:
		return nil, apperrors.ErrUnknownIdentityProvider
	}
}

// lookupIdentity fetches the identity of userID. Lookup failures are logged
// and yield an empty identity; a nil directory yields nil.
func lookupIdentity(ctx context.Context, directory UserDirectory, userID uint) *UserDetails {
	if directory == nil {
		return nil
	}
	user, err := directory.GetUser(ctx, userID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("user_id", userID).Warn("user directory lookup failed")
		return &UserDetails{}
	}
	return user
}

// HTTPUserDirectory looks users up at GET {USER_API_BASE_URL}/{id}. The
// caller's bearer token is forwarded; USER_API_TOKEN is used when the
// request carried none.
type HTTPUserDirectory struct {
	baseURL      string
	serviceToken string
	timeout      time.Duration
	client       *http.Client
}

// NewHTTPUserDirectory creates a directory backed by the user API
func NewHTTPUserDirectory(cfg *config.Config) *HTTPUserDirectory {
	timeout := time.Duration(cfg.UserAPITimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPUserDirectory{
		baseURL:      strings.TrimRight(cfg.UserAPIBaseURL, "/"),
		serviceToken: cfg.UserAPIToken,
		timeout:      timeout,
		client:       http.DefaultClient,
	}
}

// GetUser fetches one user from the user API
func (d *HTTPUserDirectory) GetUser(ctx context.Context, userID uint) (*UserDetails, error) {
	token, ok := auth.TokenFromContext(ctx)
	if !ok {
		token = d.serviceToken
	}
	if token == "" {
		return nil, fmt.Errorf("no token available for user %d lookup", userID)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, d.client), ts)

	url := d.baseURL + "/" + strconv.FormatUint(uint64(userID), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := tc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user API returned status %d", resp.StatusCode)
	}

	var user UserDetails
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
