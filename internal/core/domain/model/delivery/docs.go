// Package delivery contains the Delivery aggregate, the dispatch record a
// partner claims and carries through pickup and drop-off.
package delivery
