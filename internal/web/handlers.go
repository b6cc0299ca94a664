package web

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/models"
)

// Order — то, что уходит в очередь после оформления заказа.
// Never persisted: the queue message and the uploaded file URL are its
// only durable traces.
type Order struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Items map[int]int `json:"items"`
}

type cartRow struct {
	Product  models.Product
	Qty      int
	Subtotal float64
}

func (s *Server) home(c *gin.Context) {
	logrus.Info("home page requested")
	products, err := s.products.ListProducts(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	for i := range products {
		if products[i].ImageURL == "" {
			products[i].ImageURL = PlaceholderImage
		}
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{"Products": products})
}

func (s *Server) productDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}
	p, err := s.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImage
	}
	c.HTML(http.StatusOK, "product.tmpl", gin.H{"Product": p})
}

func (s *Server) viewCart(c *gin.Context) {
	items := cart.Get(c)

	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var rows []cartRow
	var total float64
	for _, id := range ids {
		p, err := s.products.GetProduct(c.Request.Context(), id)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		if p == nil {
			// stale cart entry, product gone — skip silently
			continue
		}
		qty := items[id]
		sub := p.Price * float64(qty)
		rows = append(rows, cartRow{Product: *p, Qty: qty, Subtotal: sub})
		total += sub
	}

	logrus.WithFields(logrus.Fields{"items": len(rows), "total": total}).Info("cart rendered")
	c.HTML(http.StatusOK, "cart.tmpl", gin.H{"Rows": rows, "Total": total})
}

func (s *Server) addToCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}
	// no existence check: an unknown id is simply skipped at render time
	cart.Add(c, id)
	c.Redirect(http.StatusFound, "/cart")
}

func (s *Server) checkoutForm(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.tmpl", gin.H{"Success": false})
}

func (s *Server) checkoutSubmit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	order := Order{Name: name, Email: email, Items: cart.Get(c)}

	logrus.WithFields(logrus.Fields{"name": name, "email": email}).Info("order received")

	var fileURL string
	if fh, err := c.FormFile("image"); err == nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		defer f.Close()
		fileURL, err = s.files.Upload(c.Request.Context(), f, fh.Filename)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}

	queueSent := false
	if s.orders.Enabled() {
		payload, err := json.Marshal(order)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		// a publish failure aborts here, before the cart is cleared
		if err := s.orders.Publish(c.Request.Context(), payload); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		queueSent = true
	}

	cart.Clear(c)
	logrus.Info("cart cleared after checkout")

	c.HTML(http.StatusOK, "checkout.tmpl", gin.H{
		"Success":   true,
		"Order":     order,
		"QueueSent": queueSent,
		"FileURL":   fileURL,
	})
}
