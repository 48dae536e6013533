package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"
)

var (
	ErrEmptyToken           = errors.New("empty bearer token")
	ErrTokenRejected        = errors.New("identity authority rejected token")
	ErrAuthorityUnavailable = errors.New("identity authority unavailable")
)

const (
	validatePath       = "/validate"
	maxValidateBody    = 1 << 20
	defaultHTTPTimeout = 10 * time.Second
)

// validateResponse is the authority's principal payload. encoding/json matches
// field names case-insensitively, so "UserId" or "userid" decode as well.
type validateResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	UserID    string `json:"userId"`
}

// RemoteTokenValidator delegates bearer token validation to the identity authority:
//
//	GET <baseURL>/validate?token=<url-encoded token>
//
// Any 2xx response carries the principal; any other status means the token is invalid.
// It holds no per-token state.
type RemoteTokenValidator struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ITokenValidator = (*RemoteTokenValidator)(nil)

func NewRemoteTokenValidator(baseURL string, timeout time.Duration) *RemoteTokenValidator {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return NewRemoteTokenValidatorWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewRemoteTokenValidatorWithClient(baseURL string, client *http.Client) *RemoteTokenValidator {
	return &RemoteTokenValidator{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
	}
}

func (v *RemoteTokenValidator) Validate(ctx context.Context, token string) (entities.Principal, error) {
	if strings.TrimSpace(token) == "" {
		return entities.Principal{}, ErrEmptyToken
	}

	endpoint := v.baseURL + validatePath + "?" + url.Values{"token": {token}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: build request: %v", ErrAuthorityUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[auth][identity] validate transport failure elapsed=%s err=%v", time.Since(start), redact(err, token))
		return entities.Principal{}, fmt.Errorf("%w: %v", ErrAuthorityUnavailable, redact(err, token))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxValidateBody))
		log.Printf("[auth][identity] token rejected status=%d elapsed=%s", resp.StatusCode, time.Since(start))
		return entities.Principal{}, ErrTokenRejected
	}

	var body validateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxValidateBody)).Decode(&body); err != nil {
		log.Printf("[auth][identity] principal payload decode failed err=%v", err)
		return entities.Principal{}, fmt.Errorf("%w: decode principal: %v", ErrAuthorityUnavailable, err)
	}

	displayName := strings.TrimSpace(body.FirstName + " " + body.LastName)
	p := entities.NewPrincipal(body.UserID, body.Email, displayName, body.Role, token)
	log.Printf("[auth][identity] token validated subject=%s role=%s elapsed=%s", p.SubjectID, p.Role, time.Since(start))
	return p, nil
}

// redact keeps the token out of url.Error messages, which embed the request URL.
func redact(err error, token string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		msg := strings.ReplaceAll(uerr.Error(), url.QueryEscape(token), "REDACTED")
		return errors.New(strings.ReplaceAll(msg, token, "REDACTED"))
	}
	return err
}
