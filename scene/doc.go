// Package scene describes what the renderer draws: elements, lights and the
// camera that turns pixels into rays.
//
// Coordinates follow the usual right handed camera convention. The camera
// sits at the origin looking down -Z with +Y up. Every quantity is a
// fixed.Number, so a scene is limited to distances that keep products inside
// the Q16.16 range; Far bounds the distances an element reports.
package scene
