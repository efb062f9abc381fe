// Package vel builds virtual element trees and turns them into other
// things: an HTML-like string, nodes of a platform DOM, or calls to a
// foreign createElement style builder.
//
//	e := vel.H("svg", vel.Attrs{vel.A("width", 10)},
//		vel.H("use", vel.Attrs{vel.A("xlink", vel.Attrs{vel.A("href", "#shape")})}),
//	)
//	fmt.Println(e) // <svg width="10"><use http://www.w3.org/1999/xlink:href="#shape"/></svg>
package vel

// Version is the version of this library.
const Version = "v0.1.0"
