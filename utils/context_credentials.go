package utils

import (
	"context"

	"github.com/clearwatch/clearwatch-backend/models"
)

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, contextKeyCredentials, creds)
}

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(contextKeyCredentials).(models.Credentials)
	return creds, ok
}
