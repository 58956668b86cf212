package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"repair_desk/internal/config"
	"repair_desk/internal/domain/entities"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	HeaderCompanyID = "X-Company-ID"
	HeaderUserID    = "X-User-ID"

	requestContextKey = "request_context"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// Claims is the access token accepted by the repository service.
type Claims struct {
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// RequestContext captures the caller identity from the bearer token and the
// tenant/user headers without verifying anything. The desk forwards it as-is.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestContextKey, headerContext(c))
		c.Next()
	}
}

// Auth verifies the bearer token when a secret is configured; the company and
// user then come from its claims. Without a secret it behaves like RequestContext.
func Auth(cfg config.AuthConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return RequestContext()
	}
	return func(c *gin.Context) {
		rc := headerContext(c)
		if rc.Token == "" {
			abortUnauthorized(c, errors.New("missing bearer token"))
			return
		}
		claims, err := ParseToken(cfg, rc.Token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		rc.CompanyID = claims.CompanyID
		rc.UserID = claims.Subject
		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// FromContext returns the identity stored by RequestContext or Auth.
func FromContext(c *gin.Context) entities.RequestContext {
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(entities.RequestContext); ok {
			return rc
		}
	}
	return entities.RequestContext{}
}

func ParseToken(cfg config.AuthConfig, tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwtSigningMethod.Alg()})}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtSigningMethod {
			return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// MintToken signs an access token for a company user.
func MintToken(cfg config.AuthConfig, companyID, userID string, ttl time.Duration) (string, error) {
	if !cfg.Enabled() {
		return "", errors.New("jwt secret is required")
	}
	now := time.Now()
	claims := Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

func headerContext(c *gin.Context) entities.RequestContext {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	} else {
		token = ""
	}
	return entities.RequestContext{
		Token:     token,
		CompanyID: strings.TrimSpace(c.GetHeader(HeaderCompanyID)),
		UserID:    strings.TrimSpace(c.GetHeader(HeaderUserID)),
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("UNAUTHORIZED", "Invalid or missing access token", err, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
