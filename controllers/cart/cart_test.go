package cartControllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

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
		&models.Category{},
		&models.Subcategory{},
		&models.Color{},
		&models.Room{},
		&models.Style{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.Coupon{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newRouter(db *gorm.DB, userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID); c.Next() })
	r.GET("/api/cart", GetUserCart(db))
	r.POST("/api/cart/add_item", AddCartItem(db))
	r.PUT("/api/cart/coupon", ApplyCoupon(db))
	r.PUT("/api/cart/items/:id", UpdateCartItem(db))
	r.DELETE("/api/cart/items/:id", DeleteCartItem(db))
	r.DELETE("/api/cart", ClearUserCart(db))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var resp CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, OriginalPrice: price, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestGetCartBeforeFirstAdd(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, uuid.NewString())

	w := doJSON(r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.TotalPrice)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	r := newRouter(db, uuid.NewString())

	body := `{"product_id":` + strconv.Itoa(int(p.ID)) + `,"quantity":2}`
	w := doJSON(r, http.MethodPost, "/api/cart/add_item", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body = `{"product_id":` + strconv.Itoa(int(p.ID)) + `,"quantity":3}`
	w = doJSON(r, http.MethodPost, "/api/cart/add_item", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 500.0, resp.CartSubtotal)
}

func TestAddInactiveProductRejected(t *testing.T) {
	db := newTestDB(t)
	p := models.Product{Name: "Retired Sofa", OriginalPrice: 300, IsActive: false}
	require.NoError(t, db.Create(&p).Error)
	r := newRouter(db, uuid.NewString())

	w := doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyCoupon(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	coupon := models.Coupon{
		Code: "SAVE20", DiscountType: models.DiscountFixed, DiscountValue: 20,
		ValidFrom: time.Now().Add(-time.Hour), ValidTo: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&coupon).Error)

	doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":1}`)

	// Codes match case-insensitively.
	w := doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":"save20"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeCart(t, w)
	assert.Equal(t, 20.0, resp.CouponDiscountAmount)
	assert.Equal(t, 80.0, resp.TotalPrice)

	// Blank code detaches.
	w = doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeCart(t, w)
	assert.Nil(t, resp.Coupon)
	assert.Equal(t, 100.0, resp.TotalPrice)
}

func TestApplyUnknownCouponLeavesCartAlone(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	good := models.Coupon{
		Code: "SAVE20", DiscountType: models.DiscountFixed, DiscountValue: 20,
		ValidFrom: time.Now().Add(-time.Hour), ValidTo: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&good).Error)

	doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":1}`)
	doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":"SAVE20"}`)

	w := doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":"NOPE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The previously applied coupon survives the failed attempt.
	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", uid).First(&cart).Error)
	require.NotNil(t, cart.CouponID)
	assert.Equal(t, good.ID, *cart.CouponID)
}

func TestExpiredCouponYieldsNoDiscount(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	expired := models.Coupon{
		Code: "OLD10", DiscountType: models.DiscountPercent, DiscountValue: 10,
		ValidFrom: time.Now().Add(-48 * time.Hour), ValidTo: time.Now().Add(-24 * time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&expired).Error)

	doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":1}`)

	// Applying it is rejected outright.
	w := doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":"OLD10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A coupon that expired after being attached stops discounting.
	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", uid).First(&cart).Error)
	require.NoError(t, db.Model(&cart).Update("coupon_id", expired.ID).Error)

	w = doJSON(r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Equal(t, 0.0, resp.CouponDiscountAmount)
	assert.Equal(t, 100.0, resp.TotalPrice)
}

func TestUpdateAndDeleteCartItem(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	w := doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":1}`)
	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	itemID := strconv.Itoa(int(resp.Items[0].ID))

	w = doJSON(r, http.MethodPut, "/api/cart/items/"+itemID, `{"quantity":4}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A different user cannot touch the line.
	other := newRouter(db, uuid.NewString())
	w = doJSON(other, http.MethodPut, "/api/cart/items/"+itemID, `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(other, http.MethodDelete, "/api/cart/items/"+itemID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/cart/items/"+itemID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClearCartDetachesCoupon(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Oak Chair", 100)
	uid := uuid.NewString()
	r := newRouter(db, uid)

	coupon := models.Coupon{
		Code: "SAVE20", DiscountType: models.DiscountFixed, DiscountValue: 20,
		ValidFrom: time.Now().Add(-time.Hour), ValidTo: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&coupon).Error)

	doJSON(r, http.MethodPost, "/api/cart/add_item",
		`{"product_id":`+strconv.Itoa(int(p.ID))+`,"quantity":2}`)
	doJSON(r, http.MethodPut, "/api/cart/coupon", `{"coupon_code":"SAVE20"}`)

	w := doJSON(r, http.MethodDelete, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", uid).First(&cart).Error)
	assert.Nil(t, cart.CouponID)
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&count).Error)
	assert.Zero(t, count)
}
