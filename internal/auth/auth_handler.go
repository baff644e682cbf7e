package auth

import (
	"net/http"
	"os"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	accessToken, refreshToken, userResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	setAuthCookies(c, accessToken, refreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Web clients carry the refresh token in a cookie instead.
		cookie, cookieErr := c.Cookie("refresh_token")
		if cookieErr != nil {
			details := apperror.MapValidationError(err)
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
			return
		}
		req.RefreshToken = cookie
	}

	accessToken, refreshToken, userResp, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	setAuthCookies(c, accessToken, refreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "unauthorized", nil)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name: "access_token", Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, Secure: isProd, SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name: "refresh_token", Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, Secure: isProd, SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"}, nil)
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(accessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}
