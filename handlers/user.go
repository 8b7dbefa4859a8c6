package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/OishiSharmeen04/TravelEase-server/models"
	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

type UserStore interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// TokenIssuer mints the bearer tokens the protected routes consume.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type UserController struct {
	store  UserStore
	tokens TokenIssuer
}

func NewUserController(store UserStore, tokens TokenIssuer) *UserController {
	return &UserController{store: store, tokens: tokens}
}

func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := uc.store.ByEmail(ctx, req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "user with this email already exists"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to hash password"})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashed,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.store.Insert(ctx, &user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := uc.store.ByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if user == nil || utils.CheckPassword(user.Password, req.Password) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *user})
}
