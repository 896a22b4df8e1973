package handler

import (
	"errors"
	"net/http"

	"goose-bumps-backend/controller/respond"
	"goose-bumps-backend/database"
	"goose-bumps-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserHandler user and progress endpoints
type UserHandler struct {
	store *database.UserStore
	log   *zap.SugaredLogger
}

// NewUserHandler create user handler instance
func NewUserHandler(store *database.UserStore, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		store: store,
		log:   log,
	}
}

// CreateUserRequest create user request
type CreateUserRequest struct {
	SolanaToken string `json:"solanaToken" binding:"required" example:"fdb12d51-0e3f-4ff8-821e-fbc255d8e413"`
}

// CreateUser create a new user
// @Summary      Create user
// @Description  Create a user with a fresh UUID and empty chapter progress
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      CreateUserRequest  true  "User to create"
// @Success      200      {object}  model.User
// @Failure      400      {object}  respond.ErrorResponse
// @Router       /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	user := model.User{
		UserID:      uuid.NewString(),
		SolanaToken: req.SolanaToken,
		ChapterIDs:  []string{},
	}
	h.store.Insert(user)
	h.log.Infow("user created", "userId", user.UserID)

	c.JSON(http.StatusOK, user)
}

// GetUser get a user by id
// @Summary      Get user
// @Description  Query a user by UUID
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        userId  path      string  true  "User UUID"
// @Success      200     {object}  model.User
// @Failure      400     {object}  respond.ErrorResponse
// @Failure      404     {object}  respond.ErrorResponse
// @Router       /user/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respond.BadRequest(c, "userId must be a UUID")
		return
	}

	user, err := h.store.Get(userID.String())
	if err != nil {
		respond.NotFound(c, "user not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// PutUserProgressRequest progress update request. challengeId is accepted
// for forward compatibility but only chapterId is recorded.
type PutUserProgressRequest struct {
	UserID      string `json:"userId" binding:"required,uuid" example:"fdb12d51-0e3f-4ff8-821e-fbc255d8e413"`
	ChallengeID string `json:"challengeId" example:"challenge-1"`
	ChapterID   string `json:"chapterId" binding:"required" example:"chapter-1"`
}

// PutUserProgress append a completed chapter to a user
// @Summary      Update user progress
// @Description  Append a chapter id to the user's progress
// @Tags         Challenge
// @Accept       json
// @Produce      json
// @Param        request  body      PutUserProgressRequest  true  "Progress update"
// @Success      200      {object}  model.User
// @Failure      400      {object}  respond.ErrorResponse
// @Failure      404      {object}  respond.ErrorResponse
// @Router       /userprogress [put]
func (h *UserHandler) PutUserProgress(c *gin.Context) {
	var req PutUserProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	user, err := h.store.AppendChapter(req.UserID, req.ChapterID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			respond.NotFound(c, "user not found")
			return
		}
		respond.BadRequest(c, err.Error())
		return
	}
	h.log.Infow("progress updated", "userId", req.UserID, "chapterId", req.ChapterID, "challengeId", req.ChallengeID)

	c.JSON(http.StatusOK, user)
}
