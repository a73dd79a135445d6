// Package order contains the Order aggregate.
//
// An order is created once per checkout from a snapshot of the customer's
// cart. Its lines and total are frozen at that moment; later menu price
// changes never reach an existing order. Afterwards only the status moves,
// and only along the order table in package status.
package order
