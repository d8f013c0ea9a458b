package domain

import "time"

// Decision is the outcome of the billing gate for one chargeable action.
type Decision struct {
	Approved     bool
	ChargeCredit bool
}

// AuthorizeCreation evaluates the tenant's subscription and credit balance at
// now. An active subscription approves without charging; otherwise one credit
// is required and will be charged once the link is stored.
func AuthorizeCreation(tenant Account, now time.Time) Decision {
	if tenant.Subscription.ActiveAt(now) {
		return Decision{Approved: true}
	}
	approved := tenant.Credits >= 1
	return Decision{Approved: approved, ChargeCredit: approved}
}
