package api

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/clearwatch/clearwatch-backend/dto"
	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/utils"
)

// Authentication validates the bearer token minted by the identity provider
// and stores the verified caller identity in the request context. Token
// issuance itself is an external collaborator.
type Authentication struct {
	signingKey []byte
}

func NewAuthentication(signingKey []byte) Authentication {
	return Authentication{signingKey: signingKey}
}

func parseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return token, nil
}

func (a Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenString, err := parseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.AdaptErrorDto(err))
		return
	}

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("unexpected signing method %v", token.Header["alg"])
		}
		return a.signingKey, nil
	})
	if err != nil || claims.Subject == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.AdaptErrorDto(errors.Wrap(models.UnAuthorizedError, "invalid token")))
		return
	}

	creds := models.Credentials{UserId: claims.Subject}

	ctx = utils.StoreCredentialsInContext(ctx, creds)
	ctx = utils.StoreLoggerInContext(ctx, utils.LoggerFromContext(ctx).With("user_id", creds.UserId))
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
