package commands

import (
	"context"
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
	"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
)

// SetPartnerAvailabilityCommand switches a partner online or offline for
// dispatch. The same flag also stands for admin approval; see ports.Partner.
type SetPartnerAvailabilityCommand struct {
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetPartnerAvailabilityCommand(partnerID kernel.UUID, available bool) (SetPartnerAvailabilityCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}
	return SetPartnerAvailabilityCommand{partnerID: partnerID, available: available, guard: guard.NewConstructorGuard()}, nil
}

func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c SetPartnerAvailabilityCommand) Available() bool        { return c.available }

type SetPartnerAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewSetPartnerAvailabilityCommandHandler(uowFactory PartnerUoWFactory) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h SetPartnerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetPartnerAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserDirectory()
	if _, err := users.GetPartner(ctx, cmd.PartnerID()); err != nil {
		return err
	}
	if err := users.SetPartnerAvailable(ctx, cmd.PartnerID(), cmd.Available()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
