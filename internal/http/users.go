package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore/internal/auth"
	"bookstore/internal/database/users"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserPayload is the user as exposed over the API, and also the PUT /user
// request body. The password hash never appears here.
type UserPayload struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type LoginResponse struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

type UsersController struct {
	users      *users.Repository
	bcryptCost int
}

func NewUsersController(repo *users.Repository, bcryptCost int) *UsersController {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &UsersController{users: repo, bcryptCost: bcryptCost}
}

// Register creates an account. Email uniqueness is a check before insert,
// not a constraint violation translated afterwards, so concurrent duplicate
// registrations can race past the check.
func (controller *UsersController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	exists, err := controller.users.EmailExists(req.Email)
	if err != nil {
		respondInternalError(c, err, "register: email lookup")
		return
	}
	if exists {
		respondConflict(c, "User with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password, controller.bcryptCost)
	if err != nil {
		respondInternalError(c, err, "register: hash password")
		return
	}

	user, err := controller.users.Create(req.Email, hash, req.Username)
	if err != nil {
		respondInternalError(c, err, "register: create user")
		return
	}

	c.JSON(http.StatusOK, UserPayload{ID: user.ID, Email: user.Email, Username: user.Username})
}

// Login verifies credentials and returns the user with a placeholder token.
func (controller *UsersController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := controller.users.GetByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respondNotFound(c, "User not found")
			return
		}
		respondInternalError(c, err, "login: user lookup")
		return
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		respondUnauthorized(c, "Invalid password")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:  UserPayload{ID: user.ID, Email: user.Email, Username: user.Username},
		Token: auth.LoginToken(user.ID),
	})
}

// GetUser returns the profile of the caller identified by the User-Id header.
func (controller *UsersController) GetUser(c *gin.Context) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return
	}

	user, err := controller.users.GetByID(userID)
	if err != nil {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, UserPayload{ID: user.ID, Email: user.Email, Username: user.Username})
}

// UpdateUser changes the caller's email and username. The body id must match
// the header, and the new email must not belong to another user.
func (controller *UsersController) UpdateUser(c *gin.Context) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return
	}

	var req UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.ID != userID {
		respondBadRequest(c, "User ID mismatch")
		return
	}

	if _, err := controller.users.GetByID(userID); err != nil {
		respondNotFound(c, "User not found")
		return
	}

	taken, err := controller.users.EmailTakenByOther(req.Email, userID)
	if err != nil {
		respondInternalError(c, err, "update user: email lookup")
		return
	}
	if taken {
		respondConflict(c, "Email is already in use by another user")
		return
	}

	if err := controller.users.Update(userID, req.Email, req.Username); err != nil {
		respondInternalError(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, req)
}
