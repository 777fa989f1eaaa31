// Package vehicle provides the Vehicle aggregate for the rental fleet.
//
// Vehicles carry the daily rate used to price rental orders, a normalized
// license plate, an odometer reading that cannot move backwards, and a
// soft-delete marker that removes them from the rentable fleet while
// keeping order history intact.
package vehicle
