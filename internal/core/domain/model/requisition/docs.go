// Package requisition models purchase requisitions: internal requests to buy goods
// that must be signed off by finance and by a production manager before a purchase
// order can be derived from them.
//
// Two orthogonal axes are tracked:
//   - ApprovalStatus: PendingApproval -> Approved (both slots filled) or Rejected
//   - Status: Processing -> Purchasing -> Completed, Delayed or Canceled
//
// Rejecting a requisition cancels it. At most one live purchase order is derived
// from a requisition at any time.
package requisition
