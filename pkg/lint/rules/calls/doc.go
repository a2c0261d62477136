// Package calls provides lint rules for call sites.
//
// Rules in this package:
//   - CL01: Calls to a method named unwrap
package calls
