// Package ports defines the contracts between the fulfillment core and the
// infrastructure that backs it: aggregate repositories, the read-only
// collaborators (menu, addresses, users), the unit of work tying them to one
// transaction, and the outbound event publisher.
package ports
