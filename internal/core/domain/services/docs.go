// Package services contains stateless domain services that coordinate
// behavior across aggregates. The only service here is the OrderPricer,
// which turns ledger-resolved prices into frozen order line items.
package services
