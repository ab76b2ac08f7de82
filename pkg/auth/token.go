package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"

	TokenTypeBearer = "bearer"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	// ErrAccountDisabled is returned when the token holder no longer exists or is inactive.
	ErrAccountDisabled = errors.New("account is disabled or does not exist")
)

type Claims struct {
	jwt.RegisteredClaims
	UserID   int64     `json:"uid"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"admin"`
	Type     TokenType `json:"typ"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// Issue returns a fresh access/refresh pair.
func (m *TokenManager) Issue(p Principal) (Tokens, error) {
	access, err := m.sign(p, TokenAccess, m.accessTTL)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := m.sign(p, TokenRefresh, m.refreshTTL)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    TokenTypeBearer,
		ExpiresIn:    int(m.accessTTL.Seconds()),
	}, nil
}

func (m *TokenManager) IssueAccess(p Principal) (Tokens, error) {
	access, err := m.sign(p, TokenAccess, m.accessTTL)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int(m.accessTTL.Seconds()),
	}, nil
}

func (m *TokenManager) sign(p Principal, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   p.UserID,
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
		Type:     typ,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// Parse verifies signature, issuer, expiry and token type.
func (m *TokenManager) Parse(tokenStr string, typ TokenType) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid || claims.Type != typ {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// Validate parses an access token into the principal it was issued for.
func (m *TokenManager) Validate(tokenStr string) (Principal, error) {
	claims, err := m.Parse(tokenStr, TokenAccess)
	if err != nil {
		return Principal{}, err
	}
	return Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
		IsActive: true,
	}, nil
}
