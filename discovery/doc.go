// Package discovery contains the provider-agnostic part of the harvester: the
// resource envelope, the versioned classification tagger, the discovery module
// capability and the registry that runs modules against a project.
//
// # Data flow
//
//	Registry.RunAll
//	  -> Module.Discover (one per registered service, bounded concurrency)
//	       -> provider listing call, drained to completion
//	       -> NewResource per item, supplements applied by the module
//	       -> Wrap with the module's classification path
//	       -> Emitter.Emit
//
// # Error handling
//
// Connection and listing failures are caught inside the module that caused
// them and passed to the ErrorReporter, tagged with the failing resource type.
// They never reach the registry or sibling modules, so a scan that hits
// provider errors still completes and emits everything the unaffected
// services produced. The reported errors are the only signal that a service's
// results are incomplete.
//
// Precondition violations (an empty classification path, an empty resource
// type, registering a nil module) are programming errors and panic.
package discovery
