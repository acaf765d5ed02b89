package events

const WishlistChangedEvent = "wishlist.changed"

type WishlistChanged struct {
	ProductIDs []string `json:"productIds"`
}
