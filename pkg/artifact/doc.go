// Package artifact defines the boundary to the external document-creation
// capability: a Provider acquires one reusable Session per batch, the Session
// materializes rendered messages as template artifacts, and Release tears the
// capability down exactly once.
//
// The interface deliberately mirrors the lifecycle of an expensive stateful
// automation handle, such as a desktop mail client driven over an automation
// bridge: acquire once, create many, release once. Implementations live in
// subpackages; emlfile writes RFC 5322 message template files to disk.
package artifact
