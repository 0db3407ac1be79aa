package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/httputil"
	"github.com/tankbudget/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for signup and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/signup", OptionsSignup)
	r.POST("/signup", Signup)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)

	r.OPTIONS("/verify", OptionsVerify)
	r.GET("/verify", auth.Middleware(), Verify)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/signup [options]
func OptionsSignup(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/verify [options]
func OptionsVerify(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Sign up
// @Description	Creates a new user and returns a token for it
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		SignupRequest	true	"User"
// @Router			/v1/auth/signup [post]
func Signup(c *gin.Context) {
	var request SignupRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("hashing password")
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	user, err := models.CreateUser(models.DB, models.User{
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		PasswordHash: hash,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	session, err := newSession(user)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Msg("user signed up")
	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

// @Summary		Log in
// @Description	Returns a token for the user with the given credentials
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	user, err := models.UserByEmail(models.DB, request.Email)
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && !auth.CheckPassword(request.Password, user.PasswordHash)) {
		err = auth.ErrInvalidCredentials
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	session, err := newSession(user)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &session})
}

// @Summary		Verify token
// @Description	Returns the user the token in the Authorization header belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/auth/verify [get]
func Verify(c *gin.Context) {
	user, err := models.UserByID(models.DB, auth.UserID(c))

	// A valid token for a user that no longer exists is not valid
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrTokenInvalid
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

func newSession(user models.User) (Session, error) {
	token, expiresAt, err := auth.NewToken(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("signing token")
		return Session{}, models.ErrGeneral
	}

	return Session{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
