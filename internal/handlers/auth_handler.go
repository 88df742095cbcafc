package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vilanovabarber/booking-api/internal/auth"
	"github.com/vilanovabarber/booking-api/internal/config"
	"github.com/vilanovabarber/booking-api/internal/domain/identity"
	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/middleware"
	"github.com/vilanovabarber/booking-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	client *http.Client
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// --------- Me / Logout ---------

// Me returns the freshly loaded user for the current session, or null for
// anonymous and barber-only callers.
func (h *AuthHandler) Me(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if !ident.IsUser() {
		c.JSON(http.StatusOK, nil)
		return
	}

	var user models.User
	if err := h.db.First(&user, ident.User.ID).Error; err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, middleware.SessionCookie)
	clearSessionCookie(c, middleware.BarberCookie)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------- OAuth callback ---------

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type oauthUserInfo struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"loginMethod"`
	Platform    string `json:"platform"`
}

// OAuthCallback finishes the external login flow: exchanges the code,
// upserts the user by open-id and issues the session cookie.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		httperr.BadRequest(c, "invalid_request", "code e state são obrigatórios.")
		return
	}

	info, err := h.exchangeCode(code, state)
	if err != nil || info.OpenID == "" {
		httperr.Internal(c, "oauth_failed", "Falha ao concluir o login.")
		return
	}

	user, err := h.upsertUser(info)
	if err != nil {
		httperr.Internal(c, "oauth_failed", "Falha ao concluir o login.")
		return
	}

	token, err := auth.SignSession(h.config.SessionSecret, identity.User{
		ID:     user.ID,
		OpenID: user.OpenID,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		httperr.Internal(c, "oauth_failed", "Falha ao concluir o login.")
		return
	}

	setSessionCookie(c, middleware.SessionCookie, token, int(auth.SessionTTL.Seconds()))
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) exchangeCode(code, state string) (*oauthUserInfo, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("state", state)
	form.Set("client_id", h.config.OAuth.ClientID)
	form.Set("client_secret", h.config.OAuth.ClientSecret)

	resp, err := h.client.Post(
		h.config.OAuth.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tok oauthTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, h.config.OAuth.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	infoResp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer infoResp.Body.Close()

	var info oauthUserInfo
	if err := json.NewDecoder(infoResp.Body).Decode(&info); err != nil {
		return nil, err
	}

	return &info, nil
}

// upsertUser inserts or refreshes the user keyed by open-id. The configured
// owner open-id is the only identity promoted to admin.
func (h *AuthHandler) upsertUser(info *oauthUserInfo) (*models.User, error) {
	loginMethod := info.LoginMethod
	if loginMethod == "" {
		loginMethod = info.Platform
	}

	role := models.RoleUser
	if h.config.OwnerOpenID != "" && info.OpenID == h.config.OwnerOpenID {
		role = models.RoleAdmin
	}

	user := models.User{
		OpenID:       info.OpenID,
		Name:         info.Name,
		Email:        info.Email,
		LoginMethod:  loginMethod,
		Role:         role,
		LastSignedIn: time.Now(),
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "login_method", "role", "last_signed_in",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	var fresh models.User
	if err := h.db.Where("open_id = ?", info.OpenID).First(&fresh).Error; err != nil {
		return nil, err
	}

	return &fresh, nil
}
