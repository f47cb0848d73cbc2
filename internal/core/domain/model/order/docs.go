// Package order provides the lifecycle engine shared by purchase and sales orders.
//
// The package includes:
//   - Item and Ledger: line items of an order, unique by item id, and the totals derived from them
//   - Event and EventLog: the append-only timeline of manual and automatic events
//   - Status and PaymentStatus: the two independent state axes with their transitions
//   - Order: the aggregate root combining the above, parameterized by a variant Policy
//
// Key business rules:
//   - SubTotal, VatAmount and TotalAmount are recomputed whenever items change and never set directly
//   - Delivery follows Processing -> Delivering -> Delivered -> Completed, with Canceled before
//     delivery completes and Returned after it
//   - Payment becomes Due on delivery and is completed by a separate operation
//   - Finish metadata is written exactly once, by whichever terminal transition runs first
//   - Automatic events are immutable; only Left, Arrived and Interrupted events may be edited
package order
