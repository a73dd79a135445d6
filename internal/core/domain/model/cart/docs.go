// Package cart contains the Cart aggregate: one customer's in-progress
// selection of menu items.
//
// A cart is created lazily on first access, mutated by AddItem and
// RemoveItem, and emptied (never deleted) when it is converted into an
// order. Prices are not part of the cart; they are resolved at checkout.
package cart
