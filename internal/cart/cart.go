package cart

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const cartKey = "cart" // map[int]int, product id → qty

func init() {
	// the cookie store serializes session values with gob
	gob.Register(map[int]int{})
}

// Get returns the session's cart snapshot. Missing or malformed session
// data yields an empty cart.
func Get(c *gin.Context) map[int]int {
	sess := sessions.Default(c)
	raw := sess.Get(cartKey)
	if raw == nil {
		return map[int]int{}
	}
	m, ok := raw.(map[int]int)
	if !ok {
		return map[int]int{}
	}
	return m
}

// Add увеличивает количество товара в корзине на единицу.
// There is no existence check here: unknown ids are skipped at render
// time instead.
func Add(c *gin.Context, productID int) int {
	m := Get(c)
	m[productID]++
	save(c, m)
	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"qty":        m[productID],
	}).Info("added to cart")
	return m[productID]
}

// Clear очищает корзину текущей сессии.
func Clear(c *gin.Context) {
	save(c, map[int]int{})
}

func save(c *gin.Context, m map[int]int) {
	sess := sessions.Default(c)
	sess.Set(cartKey, m)
	_ = sess.Save()
}
