package addressControllers

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Hyperht/piano-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Governorate{},
		&models.Area{},
		&models.Address{},
	))
	return db
}

func newRouter(db *gorm.DB, userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID); c.Next() })
	r.GET("/api/addresses", ListAddresses(db))
	r.POST("/api/addresses", CreateAddress(db))
	r.PUT("/api/addresses/:id", UpdateAddress(db))
	r.DELETE("/api/addresses/:id", DeleteAddress(db))
	r.POST("/api/addresses/:id/set_default", SetDefaultAddress(db))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedArea(t *testing.T, db *gorm.DB) models.Area {
	t.Helper()
	gov := models.Governorate{Name: "Capital " + uuid.NewString()[:8]}
	require.NoError(t, db.Create(&gov).Error)
	area := models.Area{Name: "Downtown", GovernorateID: gov.ID, ShippingCost: 10}
	require.NoError(t, db.Create(&area).Error)
	return area
}

func defaultCount(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).Count(&n).Error)
	return n
}

func TestCreateAddressAsDefault(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	w := doJSON(r, http.MethodPost, "/api/addresses",
		`{"area_id":`+strconv.Itoa(int(area.ID))+`,"street_address":"1 Main St","is_default":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, defaultCount(t, db, uid))
}

func TestSecondDefaultDemotesFirst(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	areaID := strconv.Itoa(int(area.ID))
	w := doJSON(r, http.MethodPost, "/api/addresses",
		`{"area_id":`+areaID+`,"street_address":"1 Main St","is_default":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/addresses",
		`{"area_id":`+areaID+`,"street_address":"2 Side St","is_default":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.EqualValues(t, 1, defaultCount(t, db, uid))

	var current models.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", uid, true).First(&current).Error)
	assert.Equal(t, "2 Side St", current.StreetAddress)
}

func TestSetDefaultSwitchesFlag(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	first := models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "1 Main St", IsDefault: true}
	second := models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "2 Side St"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(r, http.MethodPost, "/api/addresses/"+strconv.Itoa(int(second.ID))+"/set_default", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.EqualValues(t, 1, defaultCount(t, db, uid))
	var reloaded models.Address
	require.NoError(t, db.First(&reloaded, second.ID).Error)
	assert.True(t, reloaded.IsDefault)
}

func TestUpdateCanDropDefaultFlag(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	addr := models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "1 Main St", IsDefault: true}
	require.NoError(t, db.Create(&addr).Error)

	// Explicit false turns it off; the user ends up with no default, which
	// is allowed.
	w := doJSON(r, http.MethodPut, "/api/addresses/"+strconv.Itoa(int(addr.ID)),
		`{"is_default":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 0, defaultCount(t, db, uid))

	// Omitting the field leaves the flag alone.
	require.NoError(t, db.Model(&addr).Update("is_default", true).Error)
	w = doJSON(r, http.MethodPut, "/api/addresses/"+strconv.Itoa(int(addr.ID)),
		`{"street_address":"1 Main St, Apt 2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, defaultCount(t, db, uid))
}

func TestAddressOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()

	foreign := models.Address{UserID: uuid.NewString(), AreaID: area.ID, StreetAddress: "elsewhere"}
	require.NoError(t, db.Create(&foreign).Error)

	r := newRouter(db, uid)
	id := strconv.Itoa(int(foreign.ID))

	w := doJSON(r, http.MethodPut, "/api/addresses/"+id, `{"street_address":"hijack"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodPost, "/api/addresses/"+id+"/set_default", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodDelete, "/api/addresses/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAddressesDefaultFirst(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	require.NoError(t, db.Create(&models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "older"}).Error)
	require.NoError(t, db.Create(&models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "the default", IsDefault: true}).Error)

	w := doJSON(r, http.MethodGet, "/api/addresses", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Index(w.Body.String(), "the default") < strings.Index(w.Body.String(), "older"))
}

func TestCreateAddressUnknownArea(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, uuid.NewString())

	w := doJSON(r, http.MethodPost, "/api/addresses",
		`{"area_id":999,"street_address":"nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
