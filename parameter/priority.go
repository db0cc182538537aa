package parameter

// System execution priorities, lower runs first
// Entity updates and tweens always run before any system
const (
	PriorityCamera  = 10
	PriorityCensus = 20
)
