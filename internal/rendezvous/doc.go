// Package rendezvous coordinates per-channel sync sessions.
//
// A member opens a session with RequestStart, others join with RequestJoin, and when the deadline
// elapses or somebody triggers early the coordinator removes the session and broadcasts a countdown
// to every participant and channel regular.
//
// Each channel owns one mutex guarding its session and regulars. The lock is held for bookkeeping
// only: timers are armed under it, but countdown broadcasts and regulars notices are delivered after
// it is released. A countdown that finds no session is a no-op, which is how two early triggers
// racing each other resolve to a single broadcast.
package rendezvous
