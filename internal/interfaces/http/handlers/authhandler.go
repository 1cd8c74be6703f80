package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/application/user/dto"
	"github.com/litrevu/litrevu/internal/application/user/usecases"
	"github.com/litrevu/litrevu/internal/interfaces/http/forms"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/common"
	"github.com/litrevu/litrevu/internal/interfaces/http/middleware"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const (
	loginTemplate    = "login.html"
	registerTemplate = "register.html"
	birthDateLayout  = "2006-01-02"
)

type AuthHandler struct {
	registerUseCase registerUseCase
	loginUseCase    loginUseCase
	logoutUseCase   logoutUseCase
	cookieConfig    config.CookieConfig
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logoutUseCase:   logoutUC,
		cookieConfig:    cookieConfig,
		logger:          logger,
	}
}

type LoginInput struct {
	Username string `form:"username" json:"username" validate:"notblank,max=150"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegisterInput struct {
	Username        string `form:"username" json:"username" validate:"notblank,max=150"`
	Email           string `form:"email" json:"email" validate:"required,email,max=254"`
	Password        string `form:"password" json:"password" validate:"required"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" validate:"required"`
	BirthDate       string `form:"birth_date" json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender          string `form:"gender" json:"gender" validate:"omitempty,oneof=M F O"`
}

// withoutSecrets is the copy echoed back into a re-rendered form.
func (in RegisterInput) withoutSecrets() RegisterInput {
	in.Password = ""
	in.PasswordConfirm = ""
	return in
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	next := c.Query("next")
	if middleware.CurrentAuth(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, safeRedirect(next))
		return
	}
	common.Render(c, http.StatusOK, loginTemplate, gin.H{"form": LoginInput{}, "next": next})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	next := c.Query("next")

	var req LoginInput
	if err := c.ShouldBind(&req); err != nil {
		common.RespondFormErrors(c, loginTemplate, gin.H{"form": LoginInput{}, "next": next}, common.BindError())
		return
	}
	data := gin.H{"form": LoginInput{Username: req.Username}, "next": next}

	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, loginTemplate, data, res.Errors())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		if authErr := errors.GetAuthError(err); authErr != nil && !utils.WantsJSON(c) {
			data["errors"] = forms.FieldErrors{forms.NonFieldErrors: authErr.Message}
			common.Render(c, http.StatusOK, loginTemplate, data)
			return
		}
		utils.RespondError(c, err)
		return
	}

	h.startSession(c, result)

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "login successful", result)
		return
	}
	c.Redirect(http.StatusFound, safeRedirect(next))
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if middleware.CurrentAuth(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	common.Render(c, http.StatusOK, registerTemplate, gin.H{"form": RegisterInput{}})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterInput
	if err := c.ShouldBind(&req); err != nil {
		common.RespondFormErrors(c, registerTemplate, gin.H{"form": RegisterInput{}}, common.BindError())
		return
	}
	data := gin.H{"form": req.withoutSecrets()}

	if res := forms.Validate(req); !res.Valid() {
		common.RespondFormErrors(c, registerTemplate, data, res.Errors())
		return
	}

	cmd := usecases.RegisterCommand{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Gender:          req.Gender,
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	}
	if req.BirthDate != "" {
		// Format already checked by the form validation.
		birthDate, _ := time.Parse(birthDateLayout, req.BirthDate)
		cmd.BirthDate = &birthDate
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleFormError(c, registerTemplate, data, err)
		return
	}

	h.startSession(c, result)

	if utils.WantsJSON(c) {
		utils.CreatedResponse(c, result, "registration successful")
		return
	}
	common.RedirectWithFlash(c, h.cookieConfig, "/", "Welcome to LITRevu, "+result.User.Username+"!")
}

// Logout handles GET and POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	auth := middleware.CurrentAuth(c)
	if auth.IsAuthenticated() {
		if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: auth.SessionID}); err != nil {
			h.logger.Errorw("failed to delete session on logout", "error", err, "user_id", auth.UserID)
		}
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.ClearCSRFCookie(c, h.cookieConfig)

	if utils.WantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) startSession(c *gin.Context, result *dto.AuthResult) {
	maxAge := int(result.ExpiresAt.Sub(biztime.NowUTC()).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)
}

// safeRedirect only follows local paths.
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
