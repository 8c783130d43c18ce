// Package pricing contains the price-ledger domain model: the immutable
// PriceEntry record, the ChangeReason enumeration, and the change-statistics
// aggregation.
//
// The ledger is the single source of truth for product prices. Every price a
// product has ever had is an append-only PriceEntry; the current price and
// the price at any past instant are derived by selecting the entry with the
// greatest effective-from timestamp not after the requested time. Any cached
// "current price" elsewhere (such as the product projection) is a
// denormalized view and is never an input to order pricing.
package pricing
