// Package paging renders material listings as size-bounded chat pages.
//
// Keys are ordered naturally (embedded numbers compare by value, so
// "lesson9" sorts before "lesson10") and grouped under decade headers based
// on the trailing number of the final path segment. Rendered pages never
// exceed the delivery channel's message size cap; truncation is graceful.
package paging
