package services

import "errors"

var (
	// ErrNotFound covers a missing user, restaurant, item, cart, or
	// item-in-cart. Controllers map it to 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a stale versioned write: the document changed between
	// the read and the replace.
	ErrConflict = errors.New("version conflict")

	// ErrDuplicateCart is an insert that hit the unique userId index.
	ErrDuplicateCart = errors.New("cart already exists for user")

	// ErrNoItemsForRestaurant is returned when a restaurant item query comes
	// back empty. This conflates "no items yet" with "lookup failed" and is
	// kept only because callers depend on it.
	ErrNoItemsForRestaurant = errors.New("no items found for restaurant")
)
