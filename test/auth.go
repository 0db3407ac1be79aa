package test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/models"
)

// Authorization is a request header map to pass to Request.
type Authorization map[string]string

// User creates a user directly in the database and returns its ID along
// with the header to authenticate requests as this user.
func User(t *testing.T, username string) (uuid.UUID, Authorization) {
	hash, err := auth.HashPassword("testing-password")
	require.Nil(t, err)

	user, err := models.CreateUser(models.DB, models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: hash,
	})
	require.Nil(t, err, "creating user %s", username)

	return user.ID, Bearer(t, user.ID)
}

// Bearer returns the Authorization header with a valid token for the ID.
func Bearer(t *testing.T, id uuid.UUID) Authorization {
	token, _, err := auth.NewToken(id, "")
	require.Nil(t, err, "signing token")

	return Authorization{
		http.CanonicalHeaderKey("Authorization"): "Bearer " + token,
	}
}
