// Package host connects links to an external state holder.
//
// The only contract a host has to meet is a (value, setter) pair: the current root value
// and a function that replaces it wholesale. Bind turns such a pair into a root link:
//
//	root := host.Bind(value, setState)
//	root.Prop("title").Set("done")   // calls setState with the new root
//
// Bind does no caching of its own, and it builds a new updater on every call, so links
// bound on separate calls never share identity. Hosts that want stable links across
// repeated renders keep one updater per value, which is what Store does.
//
// # Store
//
// Store is a small in-process state holder. It exposes the same (value, setter) pair
// through Hook and adds versioning, subscriptions and memoized root links:
//
//	s := host.NewStore(initial)
//	unsubscribe := s.Subscribe(func(v any, version uint64) { render(s.Link()) })
//	defer unsubscribe()
//
// Link returns the same *Link until the next commit.
//
// Writes are last-write-wins. A write through a link derived from an older version is
// applied to the live value and logged at warn level. Listeners run outside the store
// lock; a write issued from a listener becomes a new commit, delivered after the current
// round of notifications.
package host
