// Package writers maps render names to output functions.
//
// Design:
//   • Writers own the choice of presentation; internal/output owns the bytes.
//   • Commands look renderers up by name instead of switching on flags.
//   • Format listings go through pkg/api (v1) for a stable JSON shape.
package writers
