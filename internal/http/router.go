package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Orders    *OrderHandler
	Profile   *ProfileHandler
	Messaging *MessagingHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.Catalog.List)
		r.Get("/products/{productId}", h.Catalog.Get)
		r.Get("/categories", h.Catalog.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Delete("/", h.Cart.Clear)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{productId}", h.Cart.UpdateItem)
			r.Delete("/items/{productId}", h.Cart.RemoveItem)

			r.Post("/selection", h.Cart.SelectAll)
			r.Delete("/selection", h.Cart.DeselectAll)
			r.Post("/selection/{productId}", h.Cart.ToggleSelect)
		})

		r.Get("/wishlist", h.Cart.GetWishlist)
		r.Post("/wishlist/{productId}", h.Cart.ToggleWishlist)

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/quote", h.Checkout.Quote)
			r.Get("/methods", h.Checkout.Methods)
			r.Post("/payment", h.Checkout.Pay)
		})

		r.Get("/orders", h.Orders.List)
		r.Get("/orders/{orderId}", h.Orders.Get)

		r.Get("/profile", h.Profile.Get)
		r.Put("/profile/address", h.Profile.SetAddress)

		r.Get("/conversations", h.Messaging.ListConversations)
		r.Get("/conversations/{conversationId}/messages", h.Messaging.Messages)
		r.Post("/conversations/{conversationId}/messages", h.Messaging.Send)
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}
