package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"saporis/internal/repository"
	"saporis/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OauthController struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewOauthController(userRepo repository.UserRepository, sessions session.Store) *OauthController {
	return &OauthController{userRepo: userRepo, sessions: sessions}
}

// GoogleAuth godoc
// @Summary Authenticate with a Google ID token
// @Description Verifies the token with Google. Existing accounts get a session
// @Description token; unknown accounts get a one-shot signup state that
// @Description prefills the onboarding wizard.
// @Tags oauth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Google authentication successful"
// @Failure 401 {object} map[string]interface{} "Invalid Google ID token"
// @Router /oauth/google [post]
func (oc *OauthController) GoogleAuth(c *gin.Context) {
	var authRequest struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&authRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + authRequest.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token verification failed",
		})
		return
	}

	var tokenInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
			"error":   err.Error(),
		})
		return
	}

	email, ok := tokenInfo["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email not found in token",
		})
		return
	}
	email = strings.ToLower(email)

	user, err := oc.userRepo.GetUserByEmail(email)
	if err == nil {
		// Existing account: plain login.
		tokenString, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Could not generate token",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Google authentication successful",
			"data": gin.H{
				"token": tokenString,
				"user":  user,
			},
		})
		return
	}

	// New account: hand the verified identity off to the signup wizard via a
	// one-shot state value.
	givenName, _ := tokenInfo["given_name"].(string)
	familyName, _ := tokenInfo["family_name"].(string)

	state := uuid.New().String()
	handoff := &session.OAuthHandoff{
		Email:     email,
		FirstName: givenName,
		LastName:  familyName,
	}
	if err := oc.sessions.PutOAuthHandoff(c.Request.Context(), state, handoff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to prepare signup",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Account setup required",
		"data": gin.H{
			"requires_signup": true,
			"signup_state":    state,
			"email":           email,
		},
	})
}
