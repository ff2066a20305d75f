package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AhadGhee/socialbook/db"
	"github.com/AhadGhee/socialbook/middleware"
	"github.com/AhadGhee/socialbook/models"
	"github.com/AhadGhee/socialbook/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Signup page
// @Description Page model for the signup form, including any pending flash message
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /signup [get]
func SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": utils.ConsumeFlash(c)})
}

// @Summary Create a new account
// @Description Create a user and its profile, then start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param password2 formData string true "Password confirmation"
// @Success 302 {string} string "Redirect to /settings, or back to /signup with a flash message"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /signup [post]
func Signup(c *gin.Context) {
	var input models.SignupInput

	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlash(c, "All fields are required")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	if input.Password != input.Password2 {
		utils.SetFlash(c, "Password Not Matching")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.SetFlash(c, "This email already exists")
		c.Redirect(http.StatusFound, "/signup")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking email existence")
		utils.SendError(c, http.StatusInternalServerError, "Error checking email existence")
		return
	}

	if err := db.DB.Where("user_name = ?", input.UserName).First(&existing).Error; err == nil {
		utils.SetFlash(c, "Username is taken")
		c.Redirect(http.StatusFound, "/signup")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking username existence")
		utils.SendError(c, http.StatusInternalServerError, "Error checking username existence")
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		utils.SendError(c, http.StatusUnprocessableEntity, "Error hashing the password")
		return
	}

	user := models.User{
		UserName: input.UserName,
		Email:    input.Email,
		Password: passwordHash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the read-then-check; the unique
		// indexes still hold, so map the violation back to the form message.
		if isUniqueViolation(err, "email") {
			utils.SetFlash(c, "This email already exists")
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		if isUniqueViolation(err, "user_name") {
			utils.SetFlash(c, "Username is taken")
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		utils.LogError(err, "Error creating user")
		utils.SendError(c, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	// Every account gets exactly one profile, provisioned right here.
	profile := models.Profile{
		UserID:    user.ID,
		AvatarURL: models.DefaultAvatarURL,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		utils.LogErrorWithUser(user.UserName, err, "Error creating profile")
		utils.SendError(c, http.StatusInternalServerError, "Error creating profile: "+err.Error())
		return
	}

	if err := establishSession(c, user); err != nil {
		utils.LogErrorWithUser(user.UserName, err, "Error creating session")
		utils.SendError(c, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(user.UserName, "User signed up")
	c.Redirect(http.StatusFound, "/settings")
}

// @Summary Signin page
// @Description Page model for the signin form, including any pending flash message
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /signin [get]
func SigninPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": utils.ConsumeFlash(c)})
}

// @Summary Sign in
// @Description Verify credentials and start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to /, or back to /signin with a flash message"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /signin [post]
func Signin(c *gin.Context) {
	var input models.SigninInput

	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlash(c, "Credentials Invalid")
		c.Redirect(http.StatusFound, "/signin")
		return
	}

	var user models.User
	result := db.DB.Where("user_name = ?", input.UserName).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SetFlash(c, "Credentials Invalid")
			c.Redirect(http.StatusFound, "/signin")
			return
		}
		utils.LogError(result.Error, "Error looking up user")
		utils.SendError(c, http.StatusInternalServerError, "Database error: "+result.Error.Error())
		return
	}

	if !samePassword(input.Password, user.Password) {
		utils.SetFlash(c, "Credentials Invalid")
		c.Redirect(http.StatusFound, "/signin")
		return
	}

	if err := establishSession(c, user); err != nil {
		utils.LogErrorWithUser(user.UserName, err, "Error creating session")
		utils.SendError(c, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(user.UserName, "User signed in")
	c.Redirect(http.StatusFound, "/")
}

// @Summary Log out
// @Description Tear down the current session. Calling without a session is not an error.
// @Tags auth
// @Success 302 {string} string "Redirect to /signin"
// @Router /logout [get]
func Logout(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.SessionCookie)
	if err == nil && tokenString != "" {
		if claims, err := utils.DecodeSessionToken(tokenString); err == nil {
			if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
				if err := db.DB.Delete(&models.Session{}, "id = ?", sessionID).Error; err != nil {
					utils.LogError(err, "Error deleting session")
				}
			}
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/signin")
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// the given column, e.g. `duplicate key value violates unique constraint
// "idx_users_email" (SQLSTATE 23505)`.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique constraint") && !strings.Contains(msg, "sqlstate 23505") {
		return false
	}
	return strings.Contains(msg, column)
}
