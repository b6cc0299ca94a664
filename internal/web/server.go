package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/queue"
	"storefront/internal/storage"
)

//go:embed views/*.tmpl
var viewsFS embed.FS

// PlaceholderImage замещает пустой image_url у товара.
const PlaceholderImage = "/static/placeholder.png"

// ProductStore is the read surface the handlers need from the database
// gateway.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
}

// Server ties the route handlers to the capability set chosen at
// startup. Handlers never branch on the deployment mode themselves.
type Server struct {
	engine   *gin.Engine
	products ProductStore
	files    storage.ObjectStore
	orders   queue.Publisher
}

func NewServer(products ProductStore, files storage.ObjectStore, orders queue.Publisher, sessionSecret string) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("shop_session", store))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(viewsFS, "views/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	s := &Server{engine: r, products: products, files: files, orders: orders}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.home)
	s.engine.GET("/product/:id", s.productDetail)
	s.engine.GET("/cart", s.viewCart)
	s.engine.POST("/cart/add/:id", s.addToCart)
	s.engine.GET("/checkout", s.checkoutForm)
	s.engine.POST("/checkout", s.checkoutSubmit)
}
