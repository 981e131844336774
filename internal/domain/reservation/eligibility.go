package reservation

// CheckCalendarEligibility applies the opening-day and advance-window rules.
func (p *Policy) CheckCalendarEligibility(c Candidate, cfg CapacityConfig) error {
	if !IsOpeningDay(c.Date) {
		return newClosedDay(c.Date.Weekday())
	}
	if !p.IsWithinAdvanceWindow(c.Date, cfg.MaxAdvanceDays()) {
		return newOutOfAdvanceWindow(cfg.MaxAdvanceDays())
	}
	return nil
}

// CheckCreateEligibility runs the create gates in order and returns the first failure.
func (p *Policy) CheckCreateEligibility(c Candidate, cfg CapacityConfig, alreadyReservedInZone int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := p.CheckCalendarEligibility(c, cfg); err != nil {
		return err
	}
	_, err := ValidateZoneCapacity(c.PartySize, alreadyReservedInZone, c.Zone, cfg)
	return err
}

// CheckEditable is the part of update and cancel gating that depends only on
// the stored reservation and the actor.
func (p *Policy) CheckEditable(existing *Reservation, actor Actor) error {
	if existing == nil {
		return NotFound("reservation")
	}
	if !actor.IsStaff() && existing.CustomerID() != actor.ID {
		return Forbidden("you can only manage your own reservations")
	}
	if existing.Status().IsCancelled() {
		return newAlreadyCancelled(existing.Status())
	}
	if actor.IsStaff() {
		return nil
	}
	if !p.IsFutureDate(existing.Date()) || !p.HasMoreThan24HoursUntilTurn(existing.Date(), existing.Turn()) {
		return newEditWindowExpired()
	}
	return nil
}

// CheckUpdateEligibility gates moving existing to candidate.
// alreadyReservedExcludingSelf is the target zone's occupancy without existing.
func (p *Policy) CheckUpdateEligibility(
	existing *Reservation,
	candidate Candidate,
	actor Actor,
	cfg CapacityConfig,
	alreadyReservedExcludingSelf int,
) error {
	if err := p.CheckEditable(existing, actor); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}
	if !candidate.Date.Equal(existing.Date()) {
		if err := p.CheckCalendarEligibility(candidate, cfg); err != nil {
			return err
		}
	}
	if !RequiresCapacityCheck(existing.Candidate(), candidate) {
		return nil
	}
	_, err := ValidateZoneCapacity(candidate.PartySize, alreadyReservedExcludingSelf, candidate.Zone, cfg)
	return err
}
