package model

import "time"

// Product is an item sold in the salon store.  Stock is informational
// for the storefront; checkout does not decrement it.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – product name.
//  Description – optional long description.
//  PriceCents  – price in cents.
//  ImagePath   – optional path to a product image.
//  Stock       – units on hand.
//  CreatedAt   – creation timestamp.
type Product struct {
	ID          uint64    // products.id
	Name        string    // products.name
	Description string    // products.description
	PriceCents  uint32    // products.price_cents
	ImagePath   string    // products.image_path
	Stock       uint32    // products.stock
	CreatedAt   time.Time // products.created_at
}
