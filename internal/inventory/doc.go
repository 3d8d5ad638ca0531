// Package inventory holds the product records behind the mystore dashboard.
//
// It has two parts:
//
//   - Store: the ordered, in-memory collection of products. Every record
//     gets a generated ID when it is appended, so edit and delete can address
//     a record by ID no matter how the visible list is filtered or sorted.
//     Positional access (UpdateAt, RemoveAt) is kept and bounds-checked.
//   - Apply: the filter/sort pipeline that derives the view list from a
//     snapshot of the store. It is a pure function and is recomputed from
//     scratch on every render.
//
// # Prices
//
// Price and quantity are stored exactly as typed. They are coerced to
// numbers only when compared or displayed. A price that does not parse as
// a finite number is "unpriced" and sorts after every priced record in both
// directions, keeping its relative order.
//
// # Errors
//
// Operations that address a record return *Error, which wraps one of the
// sentinels ErrIndexOutOfRange, ErrNotFound or ErrInvalidSort:
//
//	if err := store.UpdateAt(i, p); errors.Is(err, inventory.ErrIndexOutOfRange) {
//	    ...
//	}
package inventory
