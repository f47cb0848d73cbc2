// Package kernel provides the domain primitives shared by every order variant.
//
// The package includes:
//   - UUID: identifier of orders and requisitions
//   - Location: a named place goods move from or to
//   - Party: a vendor, customer or production facility reference with its default location
//   - VatRate and Totals: decimal arithmetic for subtotal, VAT and total amounts
//   - Lifecycle: creator and finisher stamps of an aggregate
//
// Primitives validate on construction and are immutable afterwards.
package kernel
