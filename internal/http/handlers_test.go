package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nouvalryhn/reboxed-web/internal/catalog"
	"github.com/nouvalryhn/reboxed-web/internal/checkout"
	httpapi "github.com/nouvalryhn/reboxed-web/internal/http"
	"github.com/nouvalryhn/reboxed-web/internal/identity"
	"github.com/nouvalryhn/reboxed-web/internal/messaging"
	"github.com/nouvalryhn/reboxed-web/internal/payment"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

// newTestServer wires the full storefront with in-memory collaborators
// and an instant payment simulator.
func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	log := zap.NewNop().Sugar()

	st := store.New(store.Snapshot{}, nil)
	u := identity.DemoUser()
	st.SetUser(&u)

	cat := catalog.NewMemoryRepository(catalog.SeedProducts())
	proc := payment.NewSimulator(time.Millisecond, log)
	now := time.Now().UTC()
	msgs := messaging.NewMemoryRepository(messaging.SeedConversations(now), messaging.SeedMessages(now))

	router := httpapi.NewRouter(httpapi.Handlers{
		Catalog:   httpapi.NewCatalogHandler(cat),
		Cart:      httpapi.NewCartHandler(st, cat),
		Checkout:  httpapi.NewCheckoutHandler(checkout.NewService(st, proc, log)),
		Orders:    httpapi.NewOrderHandler(st),
		Profile:   httpapi.NewProfileHandler(st),
		Messaging: httpapi.NewMessagingHandler(msgs, st),
	})
	return router, st
}

func do(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	t.Run("list all", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/products", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		decode(t, w, &resp)
		require.Equal(t, 8, resp.Count)
	})

	t.Run("filter by category", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/products?category=Fashion", "")
		var resp struct {
			Products []catalog.Product `json:"products"`
		}
		decode(t, w, &resp)
		for _, p := range resp.Products {
			require.Equal(t, "Fashion", p.Category)
		}
		require.NotEmpty(t, resp.Products)
	})

	t.Run("get by id", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/products/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var p catalog.Product
		decode(t, w, &p)
		require.Equal(t, "iPhone 12 Pro 128GB", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/api/products/999", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartFlow(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		ItemCount int      `json:"itemCount"`
		Total     int64    `json:"totalAmount"`
		Selected  []string `json:"selected"`
	}
	decode(t, w, &view)
	require.Equal(t, 1, view.ItemCount)
	require.Equal(t, int64(7500000), view.Total)
	require.Equal(t, []string{"1"}, view.Selected)

	// same product again merges into the existing line
	w = do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"1"}`)
	decode(t, w, &view)
	require.Equal(t, 2, view.ItemCount)

	// absolute quantity update
	w = do(t, h, http.MethodPut, "/api/cart/items/1", `{"quantity":5}`)
	decode(t, w, &view)
	require.Equal(t, 5, view.ItemCount)

	// zero quantity removes the line and its selection
	w = do(t, h, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`)
	decode(t, w, &view)
	require.Equal(t, 0, view.ItemCount)
	require.Empty(t, view.Selected)
}

func TestCartAddUnknownProduct(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"999"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddInvalidJSON(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodPost, "/api/cart/items", `{`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectionEndpoints(t *testing.T) {
	h, _ := newTestServer(t)
	do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"1"}`)
	do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"2"}`)

	var view struct {
		Selected []string `json:"selected"`
	}

	w := do(t, h, http.MethodDelete, "/api/cart/selection", "")
	decode(t, w, &view)
	require.Empty(t, view.Selected)

	w = do(t, h, http.MethodPost, "/api/cart/selection/2", "")
	decode(t, w, &view)
	require.Equal(t, []string{"2"}, view.Selected)

	w = do(t, h, http.MethodPost, "/api/cart/selection", "")
	decode(t, w, &view)
	require.Equal(t, []string{"1", "2"}, view.Selected)
}

func TestWishlistEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodPost, "/api/wishlist/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		InWishlist bool `json:"inWishlist"`
	}
	decode(t, w, &resp)
	require.True(t, resp.InWishlist)

	w = do(t, h, http.MethodPost, "/api/wishlist/5", "")
	decode(t, w, &resp)
	require.False(t, resp.InWishlist)
}

func TestCheckoutFlow(t *testing.T) {
	h, st := newTestServer(t)

	// nothing selected yet
	w := do(t, h, http.MethodGet, "/api/checkout/quote", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"1"}`) // 7500000
	do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"7"}`) // 650000
	do(t, h, http.MethodPost, "/api/cart/selection/7", "")            // deselect the books

	w = do(t, h, http.MethodGet, "/api/checkout/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	var q checkout.Quote
	decode(t, w, &q)
	require.Equal(t, int64(7500000), q.Subtotal)
	require.Equal(t, int64(0), q.Shipping, "free shipping above threshold")

	w = do(t, h, http.MethodPost, "/api/checkout/payment", `{"paymentMethod":"gopay"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order struct {
			ID     string `json:"orderId"`
			Status string `json:"status"`
			Total  int64  `json:"totalAmount"`
		} `json:"order"`
		TrackingNumber string `json:"trackingNumber"`
	}
	decode(t, w, &resp)
	require.Equal(t, "paid", resp.Order.Status)
	require.Equal(t, int64(7500000), resp.Order.Total)
	require.NotEmpty(t, resp.TrackingNumber)

	// paid line gone, unselected line kept
	lines := st.CartLines()
	require.Len(t, lines, 1)
	require.Equal(t, "7", lines[0].Product.ID)

	// order visible with tracking timeline
	w = do(t, h, http.MethodGet, "/api/orders/"+resp.Order.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Timeline []map[string]any `json:"timeline"`
	}
	decode(t, w, &detail)
	require.NotEmpty(t, detail.Timeline)
}

func TestCheckoutUnknownMethod(t *testing.T) {
	h, _ := newTestServer(t)
	do(t, h, http.MethodPost, "/api/cart/items", `{"productId":"1"}`)

	w := do(t, h, http.MethodPost, "/api/checkout/payment", `{"paymentMethod":"visa"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderNotFound(t *testing.T) {
	h, _ := newTestServer(t)
	w := do(t, h, http.MethodGet, "/api/orders/ORD-404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User identity.User `json:"user"`
	}
	decode(t, w, &resp)
	require.Equal(t, "John Doe", resp.User.Name)

	w = do(t, h, http.MethodPut, "/api/profile/address",
		`{"street":"Jl. Braga No. 1","city":"Bandung","province":"Jawa Barat","postalCode":"40111","country":"Indonesia"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPut, "/api/profile/address", `{"street":"","city":"Bandung"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConversationEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/api/conversations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Conversations []messaging.Conversation `json:"conversations"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Conversations, 4)

	w = do(t, h, http.MethodPost, "/api/conversations/c1/messages", `{"content":"Masih nego kak?"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/api/conversations/c1/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var msgs struct {
		Messages []messaging.Message `json:"messages"`
	}
	decode(t, w, &msgs)
	require.Equal(t, "Masih nego kak?", msgs.Messages[len(msgs.Messages)-1].Content)

	w = do(t, h, http.MethodGet, "/api/conversations/nope/messages", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
