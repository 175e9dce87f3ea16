package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Credentials payload for the JSON sign-in endpoint.
type authCredentials struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// @Summary      Sign in
// @Description  Checks the password and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]int64
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	userID, secret, ok, err := h.services.SignIn(c.Request.Context(), input.Username, input.Password, c.Request.UserAgent())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "auth_sign_in_failed", err, "username", input.Username)
		return
	}
	if !ok {
		h.log.Infow("auth_sign_in_rejected", "username", input.Username, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.setSessionCookie(c, secret)
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

// loginPage renders the HTML login form.
func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Username": "", "Error": ""})
}

// loginSubmit handles the HTML form post. On failure the form is shown again
// with the username kept.
func (h *Handler) loginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, secret, ok, err := h.services.SignIn(c.Request.Context(), username, password, c.Request.UserAgent())
	if err != nil {
		h.log.Errorw("auth_login_failed", "err", err, "username", username, "request_id", c.GetString(requestIDKey))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Username": username,
			"Error":    errInternal,
		})
		return
	}
	if !ok {
		h.log.Infow("auth_login_rejected", "username", username, "request_id", c.GetString(requestIDKey))
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Username": username,
			"Error":    "Invalid username or password",
		})
		return
	}

	h.setSessionCookie(c, secret)
	c.Redirect(http.StatusSeeOther, "/")
}

// indexPage lists all categories for a signed-in user.
func (h *Handler) indexPage(c *gin.Context) {
	categories, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.logAndHTMLError(c, "index_list_categories_failed", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserID":     identity(c).UserID,
		"Categories": categories,
	})
}
