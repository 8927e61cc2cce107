package orderControllers

import (
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
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Color{},
		&models.Room{},
		&models.Style{},
		&models.Product{},
		&models.ProductImage{},
		&models.Coupon{},
		&models.Cart{},
		&models.CartItem{},
		&models.Governorate{},
		&models.Area{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Favorite{},
	))
	return db
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type checkoutFixture struct {
	userID    string
	cart      models.Cart
	addressID uint
	chair     models.Product
	lamp      models.Product
}

// Two products (100 x2, 50 x1 => subtotal 250) and an address whose area
// ships for 10.
func seedCheckout(t *testing.T, db *gorm.DB) checkoutFixture {
	t.Helper()
	uid := uuid.NewString()

	chair := models.Product{Name: "Oak Chair", OriginalPrice: 100, IsActive: true}
	lamp := models.Product{Name: "Brass Lamp", OriginalPrice: 50, IsActive: true}
	require.NoError(t, db.Create(&chair).Error)
	require.NoError(t, db.Create(&lamp).Error)

	gov := models.Governorate{Name: "Capital " + uid[:8]}
	require.NoError(t, db.Create(&gov).Error)
	area := models.Area{Name: "Downtown", GovernorateID: gov.ID, ShippingCost: 10}
	require.NoError(t, db.Create(&area).Error)
	address := models.Address{UserID: uid, AreaID: area.ID, StreetAddress: "1 Main St", IsDefault: true}
	require.NoError(t, db.Create(&address).Error)

	cart := models.Cart{UserID: uid}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.CartID, ProductID: chair.ID, Quantity: 2, AddedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.CartID, ProductID: lamp.ID, Quantity: 1, AddedAt: time.Now()}).Error)

	return checkoutFixture{userID: uid, cart: cart, addressID: address.ID, chair: chair, lamp: lamp}
}

func checkoutRouter(db *gorm.DB, userID string) *gin.Engine {
	r := gin.New()
	r.POST("/api/checkout", authAs(userID), Checkout(db))
	return r
}

func TestCheckoutComputesTotals(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)
	r := checkoutRouter(db, fx.userID)

	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").Where("user_id = ?", fx.userID).First(&order).Error)
	assert.Equal(t, 250.0, order.CartSubtotal)
	assert.Equal(t, 10.0, order.ShippingCost)
	assert.Equal(t, 0.0, order.CouponDiscount)
	assert.Equal(t, 260.0, order.FinalTotal)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.OrderRef)
}

func TestCheckoutAppliesCoupon(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)

	coupon := models.Coupon{
		Code: "SAVE20", DiscountType: models.DiscountFixed, DiscountValue: 20,
		ValidFrom: time.Now().Add(-time.Hour), ValidTo: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&coupon).Error)
	require.NoError(t, db.Model(&models.Cart{}).Where("cart_id = ?", fx.cart.CartID).
		Update("coupon_id", coupon.ID).Error)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"card"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", fx.userID).First(&order).Error)
	assert.Equal(t, 20.0, order.CouponDiscount)
	assert.Equal(t, 240.0, order.FinalTotal)
	assert.Equal(t, "SAVE20", order.CouponCodeUsed)

	// Order history keeps the bare code even after the coupon is gone.
	require.NoError(t, db.Delete(&coupon).Error)
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, "SAVE20", reloaded.CouponCodeUsed)
}

func TestCheckoutFreezesSalePrice(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", fx.chair.ID).
		Updates(map[string]interface{}{"sale_price": 80.0, "is_on_sale": true}).Error)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var items []models.OrderItem
	require.NoError(t, db.Order("price_at_purchase DESC").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 80.0, items[0].PriceAtPurchase)
	assert.Equal(t, "Oak Chair", items[0].ProductName)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", fx.userID).First(&order).Error)
	assert.Equal(t, 210.0, order.CartSubtotal) // 80*2 + 50
}

func TestCheckoutResetsCart(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", fx.cart.CartID).Count(&count).Error)
	assert.Zero(t, count)

	var cart models.Cart
	require.NoError(t, db.First(&cart, fx.cart.CartID).Error)
	assert.Nil(t, cart.CouponID)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)
	require.NoError(t, db.Where("cart_id = ?", fx.cart.CartID).Delete(&models.CartItem{}).Error)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutRollsBackWhenProductVanishes(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)
	require.NoError(t, db.Delete(&models.Product{}, fx.lamp.ID).Error)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing committed, cart untouched.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", fx.cart.CartID).Count(&items).Error)
	assert.EqualValues(t, 2, items)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)

	stranger := models.Address{UserID: uuid.NewString(), AreaID: 1, StreetAddress: "elsewhere"}
	require.NoError(t, db.Create(&stranger).Error)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(stranger.ID)+`,"payment_method":"cod"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserOrdersScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	fx := seedCheckout(t, db)

	r := checkoutRouter(db, fx.userID)
	w := doJSON(r, http.MethodPost, "/api/checkout",
		`{"address_id":`+itoa(fx.addressID)+`,"payment_method":"cod"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", fx.userID).First(&order).Error)

	other := gin.New()
	other.GET("/api/orders/:id", authAs(uuid.NewString()), GetUserOrderByID(db))
	w = doJSON(other, http.MethodGet, "/api/orders/"+itoa(order.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	owner := gin.New()
	owner.GET("/api/orders/:id", authAs(fx.userID), GetUserOrderByID(db))
	w = doJSON(owner, http.MethodGet, "/api/orders/"+itoa(order.ID), "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
