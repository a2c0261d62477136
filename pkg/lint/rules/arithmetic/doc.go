// Package arithmetic provides lint rules for arithmetic expressions.
//
// Rules in this package:
//   - AR01: Adding a literal zero has no effect
package arithmetic
