package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/common"
	"github.com/dmitrijs2005/bookarc/internal/logging"
)

const (
	identityContentType   = "application/x-amz-json-1.1"
	identityTargetPrefix  = "AWSCognitoIdentityProviderService."
	defaultAuthErrMessage = "Authentication failed"
)

// AuthError is a failed identity operation. Status is 0 when the failure
// was detected locally.
type AuthError struct {
	Action  string
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// IdentityClient speaks the identity provider's JSON protocol: every call
// is a POST to one endpoint with the action named in X-Amz-Target.
type IdentityClient struct {
	endpoint string
	clientID string
	http     client.HTTPDoer
	log      logging.Logger
}

func NewIdentityClient(endpoint, clientID string, doer client.HTTPDoer, log logging.Logger) *IdentityClient {
	if doer == nil {
		doer = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &IdentityClient{endpoint: endpoint, clientID: clientID, http: doer, log: log}
}

// IdentityEndpoint returns the regional identity provider URL.
func IdentityEndpoint(region string) string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/", region)
}

type userAttribute struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type signUpInput struct {
	ClientID       string          `json:"ClientId"`
	Username       string          `json:"Username"`
	Password       string          `json:"Password"`
	UserAttributes []userAttribute `json:"UserAttributes"`
}

type SignUpResult struct {
	UserConfirmed bool   `json:"UserConfirmed"`
	UserSub       string `json:"UserSub"`
}

type confirmSignUpInput struct {
	ClientID         string `json:"ClientId"`
	Username         string `json:"Username"`
	ConfirmationCode string `json:"ConfirmationCode"`
}

type initiateAuthInput struct {
	ClientID       string            `json:"ClientId"`
	AuthFlow       string            `json:"AuthFlow"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

type AuthTokens struct {
	IDToken      string `json:"IdToken"`
	AccessToken  string `json:"AccessToken"`
	RefreshToken string `json:"RefreshToken"`
	ExpiresIn    int    `json:"ExpiresIn"`
	TokenType    string `json:"TokenType"`
}

type initiateAuthOutput struct {
	AuthenticationResult *AuthTokens `json:"AuthenticationResult"`
	ChallengeName        string      `json:"ChallengeName"`
}

type usernameInput struct {
	ClientID string `json:"ClientId"`
	Username string `json:"Username"`
}

type confirmForgotPasswordInput struct {
	ClientID         string `json:"ClientId"`
	Username         string `json:"Username"`
	ConfirmationCode string `json:"ConfirmationCode"`
	Password         string `json:"Password"`
}

func (c *IdentityClient) call(ctx context.Context, action string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s: %w", action, err)
	}
	req.Header.Set("Content-Type", identityContentType)
	req.Header.Set(common.AmzTargetHeaderName, identityTargetPrefix+action)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", action, err)
	}

	c.log.Debug(ctx, "identity call", "action", action, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{Action: action, Status: resp.StatusCode, Message: authErrorMessage(body)}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}

// authErrorMessage picks "message", then "__type", then a generic text.
func authErrorMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Type    string `json:"__type"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return defaultAuthErrMessage
	}
	if s := strings.TrimSpace(env.Message); s != "" {
		return s
	}
	if s := strings.TrimSpace(env.Type); s != "" {
		return s
	}
	return defaultAuthErrMessage
}

func (c *IdentityClient) SignUp(ctx context.Context, email, password, username, displayName string) (*SignUpResult, error) {
	in := signUpInput{
		ClientID: c.clientID,
		Username: email,
		Password: password,
		UserAttributes: []userAttribute{
			{Name: "email", Value: email},
			{Name: "name", Value: displayName},
			{Name: "preferred_username", Value: username},
		},
	}
	var out SignUpResult
	if err := c.call(ctx, "SignUp", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *IdentityClient) ConfirmSignUp(ctx context.Context, email, code string) error {
	return c.call(ctx, "ConfirmSignUp", confirmSignUpInput{ClientID: c.clientID, Username: email, ConfirmationCode: code}, nil)
}

func (c *IdentityClient) InitiateAuth(ctx context.Context, email, password string) (*AuthTokens, error) {
	in := initiateAuthInput{
		ClientID: c.clientID,
		AuthFlow: "USER_PASSWORD_AUTH",
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	}
	var out initiateAuthOutput
	if err := c.call(ctx, "InitiateAuth", in, &out); err != nil {
		return nil, err
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.IDToken == "" {
		msg := defaultAuthErrMessage
		if out.ChallengeName != "" {
			msg = fmt.Sprintf("Sign-in challenge %s is not supported", out.ChallengeName)
		}
		return nil, &AuthError{Action: "InitiateAuth", Message: msg}
	}
	return out.AuthenticationResult, nil
}

func (c *IdentityClient) ResendConfirmationCode(ctx context.Context, email string) error {
	return c.call(ctx, "ResendConfirmationCode", usernameInput{ClientID: c.clientID, Username: email}, nil)
}

func (c *IdentityClient) ForgotPassword(ctx context.Context, email string) error {
	return c.call(ctx, "ForgotPassword", usernameInput{ClientID: c.clientID, Username: email}, nil)
}

func (c *IdentityClient) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) error {
	in := confirmForgotPasswordInput{
		ClientID:         c.clientID,
		Username:         email,
		ConfirmationCode: code,
		Password:         newPassword,
	}
	return c.call(ctx, "ConfirmForgotPassword", in, nil)
}
