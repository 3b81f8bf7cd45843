// Package kernel provides the domain primitives shared by every model in the
// workflow core.
//
// Its single building block is UUID, the identifier value object used for
// orders, assembly tasks, exceptions, packing lists, tenants and actors.
// The type is immutable, validates itself, and keeps the underlying uuid
// library out of domain signatures.
package kernel
