// Package menu provides the menu catalog side of the domain: the MenuItem
// entity that orders reference by id. The catalog is read-only from the
// order core's point of view; line items denormalize the item name and read
// the current price at mutation time.
package menu
