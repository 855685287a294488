package adminController

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func postApproval(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestApproveAdminRequiresValidEmail(t *testing.T) {
	db, _ := newMockDB(t)

	w := postApproval(t, ApproveAdmin(db), `{"email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postApproval(t, ApproveAdmin(db), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectAdminUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "admins" WHERE email =`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := postApproval(t, RejectAdmin(db), `{"email": "ghost@jetechhub.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectAdminDeletesAccount(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "admins" WHERE email =`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postApproval(t, RejectAdmin(db), `{"email": "staff@jetechhub.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin rejected")
	assert.NoError(t, mock.ExpectationsWereMet())
}
