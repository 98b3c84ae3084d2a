package entity

import (
	"context"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
	ctxKeyJWT
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// UserFromCtx returns the authenticated user or ErrUnauthenticated for anonymous requests.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyUser).(User)
	if !ok {
		return User{}, ErrUnauthenticated
	}

	return user, nil
}

// PayerIDFromCtx returns the id of the authenticated payer, empty for anonymous payments.
func PayerIDFromCtx(ctx context.Context) string {
	user, err := UserFromCtx(ctx)
	if err != nil {
		return ""
	}

	return user.ID
}

// CtxWithJWT keeps the caller's access token so it can be forwarded to the read API.
func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, ctxKeyJWT, jwt)
}

func JWTFromCtx(ctx context.Context) string {
	jwt, _ := ctx.Value(ctxKeyJWT).(string)
	return jwt
}
