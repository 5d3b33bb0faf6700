// Package plane holds the 2D analytic geometry: points, line equations,
// perpendiculars, rotation, and angle/distance helpers.
//
// Everything here is a pure function of its arguments, so it is all safe to
// call concurrently. Points and lines are passed by value and nothing is ever
// modified in place.
package plane
