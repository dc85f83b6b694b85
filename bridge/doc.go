// Package bridge is the embedding bridge between generated models and a
// foreign runtime.
//
// Generated code registers one Class per model from an init function. A
// foreign runtime then drives models through the Registry by name only:
// construct (New), read and write fields (Get/Set), call instance methods
// (Call) and class-level accessors (CallClass). Arguments cross the bridge as
// untyped values and are bound to Go types with Bind and the MethodN /
// ClassMethodN adapters.
package bridge
