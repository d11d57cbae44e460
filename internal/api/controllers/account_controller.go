package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sadhana/internal/models/request_models"
	"sadhana/internal/models/response_models"
	"sadhana/internal/services"
	"sadhana/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a login account with one of the roles user, counsellor or admin
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "User registered successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Verify credentials and issue a bearer token (1 hour expiry)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}

// AssignRole godoc
// @Summary Change an account's role
// @Description Admin-only role reassignment; takes effect at the holder's next login
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.AssignRoleRequest true "Role assignment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/assign-role [put]
func (a *AccountController) AssignRole(c *gin.Context) {
	var req request_models.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and role are required")
		return
	}

	if err := a.accountService.AssignRole(c.Request.Context(), req.Email, req.Role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role updated to '"+req.Role+"' for "+req.Email)
}

// GetByEmail godoc
// @Summary Look up an account by email
// @Tags Accounts
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/by-email [get]
func (a *AccountController) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	account, err := a.accountService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "User fetched successfully")
}
