// Package journey chains searches through an ordered list of waypoints.
//
// A Journey over waypoints w0..wk runs k legs strictly in sequence; leg i
// searches from w(i) to w(i+1) with a fresh search.Engine. When a leg finds
// its target the leg path is appended to the segment list, the leg's explored
// cells are folded into the cumulative set and the next leg is initialised in
// the same Step. When any leg exhausts its frontier the whole journey fails;
// segments found so far stay inspectable but Route returns nil.
//
// Errors:
//
//   - ErrTooFewWaypoints: fewer than two waypoints.
//   - ErrNotActive: RestartLeg on a completed or failed journey.
//   - search.ErrOutsideRegion, search.ErrBlockedEndpoint for unusable waypoints.
package journey
