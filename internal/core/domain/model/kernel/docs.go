// Package kernel holds the value objects shared by every aggregate of the
// fulfillment core: UUID identifiers, Money amounts and Address snapshots.
//
// All three are immutable. Their zero values are invalid and are rejected
// by Validate, which lets aggregates detect fields that were never set.
package kernel
