// Package translate turns a parsed markup document into a construction
// program.
//
// Translation is a single pre-order walk of the document. Each instance
// element becomes a variable declaration followed by the property
// assignments of its children. Identified objects are published into the
// loader namespace, and event-handler method references produce bridge
// functions forwarding to the controller. Any error aborts the document:
// no partial program is returned.
package translate
