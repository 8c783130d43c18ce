// Package order contains the Order aggregate and its supporting value objects:
// the Status state machine shared by orders and order items, the PaymentStatus
// enumeration, and the Item entity with its frozen ledger-resolved pricing.
//
// An order is created in Pending status with a total computed from its line
// items at creation time. After creation the only mutations permitted are
// status transitions (guarded by the transition table in Status) and payment
// status updates. Orders are never hard-deleted; cancellation is a terminal
// status, not a row deletion.
package order
