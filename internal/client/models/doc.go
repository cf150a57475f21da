// Package models defines the wire shapes exchanged with the BookArc
// backend. Field names and JSON tags follow the backend exactly; the client
// only relies on them for static typing and performs no validation.
//
// Request parameter structs use omitempty (or pointers for values whose
// zero is meaningful) so unset fields never reach the wire.
package models
