package jwt

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/urbanfood/usersvc/pkg/users"
)

var ErrInvalidToken = errors.New("invalid token")

// Generator issues and verifies HS256 bearer tokens. The signing secret is
// fixed for the process lifetime.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// WithClock overrides the time source, for deterministic expiry in tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Claims includes the registered claims plus our admin flag.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

func (g *Generator) Generate(ctx context.Context, user users.User) (string, error) {
	return g.Issue(strconv.FormatInt(user.ID, 10), user.IsAdmin)
}

// Issue signs a token for the given subject, expiring at now + ttl.
func (g *Generator) Issue(subject string, isAdmin bool) (string, error) {
	now := g.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    g.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		IsAdmin: isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// ParseSubject verifies signature, expiry and issuer and returns the token's
// subject. It does not consult storage; a subject that no longer exists is
// the caller's concern.
func (g *Generator) ParseSubject(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return g.now() }),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
