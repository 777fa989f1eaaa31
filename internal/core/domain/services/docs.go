// Package services provides domain services for the rental system that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - ResolveRegionTax: the fixed region-to-flat-tax pricing table applied on approval
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
