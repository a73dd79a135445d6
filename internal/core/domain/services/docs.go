// Package services holds the domain services that work across aggregates:
//
//   - PayoutCalculator: what a partner earns for a delivery
//   - DeliveryDispatcher: builds the delivery for an order that became ready for pickup
package services
