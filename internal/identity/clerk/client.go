// Package clerk reads users and organizations from the Clerk Backend API.
package clerk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nazmedical/portal/internal/client"
	"github.com/nazmedical/portal/internal/identity"
)

// DefaultAPIURL is the Clerk Backend API base URL.
const DefaultAPIURL = "https://api.clerk.com/v1"

// ErrNotFound is returned when Clerk has no record with the requested id.
var ErrNotFound = errors.New("clerk: not found")

// User is the subset of a Clerk user the portal mirrors.
type User struct {
	ID                    string         `json:"id"`
	Username              *string        `json:"username"`
	FirstName             *string        `json:"first_name"`
	LastName              *string        `json:"last_name"`
	PrimaryEmailAddressID *string        `json:"primary_email_address_id"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
}

type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// Organization is the subset of a Clerk organization the portal mirrors.
type Organization struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      *string `json:"slug"`
	CreatedBy *string `json:"created_by"`
}

// PrimaryEmail returns the user's primary email address, or "" when unset.
func (u *User) PrimaryEmail() string {
	if u.PrimaryEmailAddressID == nil {
		return ""
	}
	for _, e := range u.EmailAddresses {
		if e.ID == *u.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	return ""
}

// FullName joins first and last name, falling back to the username and then
// to a generic staff label.
func (u *User) FullName() string {
	var parts []string
	for _, p := range []*string{u.FirstName, u.LastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return identity.DefaultFullName
}

// Client calls the Clerk Backend API with a secret key.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Clerk client. An empty baseURL uses DefaultAPIURL.
func NewClient(ctx context.Context, baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client.NewBearerClient(ctx, client.Config{Token: secretKey}),
	}
}

// GetUser fetches a user by Clerk user id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), &u); err != nil {
		return nil, fmt.Errorf("failed to get clerk user: %w", err)
	}
	return &u, nil
}

// GetOrganization fetches an organization by Clerk organization id.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	var o Organization
	if err := c.get(ctx, "/organizations/"+url.PathEscape(id), &o); err != nil {
		return nil, fmt.Errorf("failed to get clerk organization: %w", err)
	}
	return &o, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("clerk API returned HTTP %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Snapshot builds the identity snapshot for a signed-in user and, when set,
// their active organization.
func (c *Client) Snapshot(ctx context.Context, userID, orgID string) (identity.Snapshot, error) {
	u, err := c.GetUser(ctx, userID)
	if err != nil {
		return identity.Snapshot{}, err
	}

	snap := identity.Snapshot{
		ExternalUserID: u.ID,
		Email:          u.PrimaryEmail(),
		FullName:       u.FullName(),
	}

	if orgID != "" {
		o, err := c.GetOrganization(ctx, orgID)
		if err != nil {
			return identity.Snapshot{}, err
		}
		snap.ExternalOrgID = o.ID
		snap.OrganizationName = o.Name
		if o.Slug != nil {
			snap.OrganizationSlug = *o.Slug
		}
	}

	return snap, nil
}
