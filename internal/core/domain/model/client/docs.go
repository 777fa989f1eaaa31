// Package client provides the Client aggregate for renter registration.
//
// Clients are identified by UUID and carry an eleven-digit CPF document number,
// normalized to bare digits at construction. A soft-delete marker keeps the
// historical record while blocking new rental orders for the client.
package client
