package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"snaplink/internal/core/domain"
)

// Claims is the payload of the bearer tokens issued by the authentication
// service. Subject holds the account id; AdminID is set for operators.
type Claims struct {
	Role    string `json:"role"`
	AdminID string `json:"adminId,omitempty"`
	jwt.RegisteredClaims
}

type actorCtxKey struct{}

// Authenticator verifies HS256 bearer tokens and turns them into actors.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator returns an Authenticator for tokens signed with secret by
// issuer.
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for actor valid for ttl.
func (a *Authenticator) Issue(actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: actor.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if actor.ParentID != nil {
		claims.AdminID = actor.ParentID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse verifies a token and returns the actor it describes.
func (a *Authenticator) Parse(token string) (domain.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(a.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrInvalidActor, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: bad subject", domain.ErrInvalidActor)
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrInvalidActor, err)
	}
	actor := domain.Actor{ID: id, Role: role}
	if claims.AdminID != "" {
		parent, err := uuid.Parse(claims.AdminID)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("%w: bad admin id", domain.ErrInvalidActor)
		}
		actor.ParentID = &parent
	}
	if _, err = domain.ResolveOwner(actor); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// actor in the request context.
func (a *Authenticator) Middleware(fail errorFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				fail(w, r, domain.ErrInvalidActor)
				return
			}
			actor, err := a.Parse(strings.TrimSpace(raw))
			if err != nil {
				fail(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorCtxKey{}, actor)))
		})
	}
}

var errNoActor = errors.New("no actor in request context")

// ActorFromContext returns the actor stored by Middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	if !ok {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrInvalidActor, errNoActor)
	}
	return actor, nil
}
