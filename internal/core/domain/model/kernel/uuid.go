package kernel

import (
	"fmt"

	"quickbite/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero UUID, i.e. one that did not come
// from NewUUID, UUIDFromString or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies carts, orders, deliveries and the collaborator records
// (customers, partners, restaurants, menu items) they reference.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual forms accepted by github.com/google/uuid.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes builds a UUID from its 16-byte form, as stored by the
// postgres adapters.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromGoogle wraps an already parsed github.com/google/uuid value.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	return fromGoogle(id)
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	out := UUID{id: id}
	if err := out.Validate(); err != nil {
		return UUID{}, err
	}
	return out, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying github.com/google/uuid value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
