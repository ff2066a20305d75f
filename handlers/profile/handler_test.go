package profile

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/AhadGhee/socialbook/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetSettings_ExistingProfile(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "u1"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE "profiles"."user_id" = \$1 (.+) LIMIT (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "avatar_url", "bio", "location"}).
			AddRow("p1", userID, "/static/images/blank-profile-picture.png", "hi", "Berlin"))

	r := testutils.SetupTestRouter()
	r.GET("/settings", func(c *gin.Context) {
		c.Set("user_id", userID)
		GetSettings(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/settings", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Berlin")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A missing profile is provisioned on first access with a conditional insert.
func TestGetSettings_ProvisionsMissingProfile(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "u1"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE "profiles"."user_id" = \$1 (.+) LIMIT (.+)`).
		WithArgs(userID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profiles" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.GET("/settings", func(c *gin.Context) {
		c.Set("user_id", userID)
		GetSettings(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/settings", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "blank-profile-picture")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettings_BioAndLocation(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "u1"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE "profiles"."user_id" = \$1 (.+) LIMIT (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "avatar_url", "bio", "location"}).
			AddRow("p1", userID, "/static/images/blank-profile-picture.png", "", ""))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/settings", func(c *gin.Context) {
		c.Set("user_id", userID)
		UpdateSettings(c)
	})

	form := url.Values{
		"bio":      {"new bio"},
		"location": {"Paris"},
	}
	req, _ := http.NewRequest(http.MethodPost, "/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/settings", resp.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilePage(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/profile", ProfilePage)

	req, _ := http.NewRequest(http.MethodGet, "/profile", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "flash")
}

func TestGetSettings_Unauthenticated(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/settings", GetSettings)

	req, _ := http.NewRequest(http.MethodGet, "/settings", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
