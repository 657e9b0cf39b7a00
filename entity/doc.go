// Package entity normalizes loosely-typed client payloads into canonical
// meal and order records.
//
// Clients name fields inconsistently (price vs unit_price, delivery_area vs
// area, and so on), so each logical field carries an alias list consulted
// before validation. The canonical records are fixed-shape structs; nothing
// downstream handles an open-ended map.
//
// Validation failures are reported as [*FieldError] naming the violated
// field and constraint. Parsing never writes anything; callers persist the
// returned record themselves.
package entity
