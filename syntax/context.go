package syntax

// groupState is one of OPEN (currently being parsed) or CLOSED.
type groupState byte

const (
	groupOpen groupState = iota
	groupClosed
)

// Context is the per-compile mutable state shared by the parser: the
// active flag set, the group table, the used-group set for
// branch-reset, and a handle to the property resolver (spec §3.3).
// A Context is owned by exactly one compile and is dropped on return,
// per the concurrency model in spec §5.
type Context struct {
	GlobalFlags Flags
	ScopedFlags Flags

	groupCount uint32
	groupIndex map[string]uint32
	groupName  map[uint32]string
	groupState map[uint32]groupState
	usedGroups map[uint32]struct{}

	Properties PropertyResolver
	CaseFold   CaseFolder
	NamedLists map[string][]string

	restarts int
}

// NewContext creates a fresh compile context with the given initial
// flags and collaborators.
func NewContext(global, scoped Flags, props PropertyResolver, cf CaseFolder, namedLists map[string][]string) *Context {
	return &Context{
		GlobalFlags: global,
		ScopedFlags: scoped,
		groupIndex:  make(map[string]uint32),
		groupName:   make(map[uint32]string),
		groupState:  make(map[uint32]groupState),
		usedGroups:  make(map[uint32]struct{}),
		Properties:  props,
		CaseFold:    cf,
		NamedLists:  namedLists,
	}
}

// NewGroup allocates the next capturing-group number and marks it OPEN.
func (c *Context) NewGroup() uint32 {
	c.groupCount++
	n := c.groupCount
	c.groupState[n] = groupOpen
	c.usedGroups[n] = struct{}{}
	return n
}

// CloseGroup marks a group CLOSED once its body has been fully parsed.
func (c *Context) CloseGroup(n uint32) { c.groupState[n] = groupClosed }

// IsOpen reports whether group n is still being parsed (forward/self
// references to it are forbidden, spec §3.3).
func (c *Context) IsOpen(n uint32) bool { return c.groupState[n] == groupOpen }

// BindName associates a group name with its number. The first binding
// for a name wins; later branch-reset siblings that reuse the same
// name do not rebind it (spec §9 Open Question resolution).
func (c *Context) BindName(name string, n uint32) bool {
	if _, dup := c.groupIndex[name]; dup {
		return false
	}
	c.groupIndex[name] = n
	c.groupName[n] = name
	return true
}

// GroupByName resolves a name to its number.
func (c *Context) GroupByName(name string) (uint32, bool) {
	n, ok := c.groupIndex[name]
	return n, ok
}

// GroupCount returns the number of capturing groups allocated so far.
func (c *Context) GroupCount() uint32 { return c.groupCount }

// GroupNames returns the name->number table, safe to hand to callers
// after compilation completes (spec §6.1 output).
func (c *Context) GroupNames() map[string]uint32 {
	out := make(map[string]uint32, len(c.groupIndex))
	for k, v := range c.groupIndex {
		out[k] = v
	}
	return out
}

// branchResetSnapshot captures group_count/used_groups/group_index/
// group_name before a branch-reset sibling so the next sibling can
// restore them to the same starting point (spec §4.2.4): each sibling
// is parsed as if it were the only alternative, including being free
// to rebind a name a previous sibling already bound, since only one
// sibling's capture actually fires at match time.
type branchResetSnapshot struct {
	count      uint32
	used       map[uint32]struct{}
	groupIndex map[string]uint32
	groupName  map[uint32]string
}

func (c *Context) snapshotForBranchReset() branchResetSnapshot {
	return branchResetSnapshot{
		count:      c.groupCount,
		used:       copyUintSet(c.usedGroups),
		groupIndex: copyStringUintMap(c.groupIndex),
		groupName:  copyUintStringMap(c.groupName),
	}
}

// restoreForBranchReset resets the context to snap's state, handing
// out fresh copies each time: snap itself must stay untouched so every
// sibling restores from the true pre-branch-reset baseline rather than
// from whatever the previous sibling mutated it into.
func (c *Context) restoreForBranchReset(snap branchResetSnapshot) {
	c.groupCount = snap.count
	c.usedGroups = copyUintSet(snap.used)
	c.groupIndex = copyStringUintMap(snap.groupIndex)
	c.groupName = copyUintStringMap(snap.groupName)
}

// mergeBranchResetUsed installs the final post-branch-reset state: the
// maximum group count and the union of used groups and name bindings
// across all siblings. A name bound by more than one sibling keeps
// whichever binding the caller placed first in nameIndex/nameOf (spec
// §9 Open Question resolution: "first branch's mapping wins").
func (c *Context) mergeBranchResetUsed(maxCount uint32, union map[uint32]struct{}, nameIndex map[string]uint32, nameOf map[uint32]string) {
	c.groupCount = maxCount
	c.usedGroups = union
	c.groupIndex = nameIndex
	c.groupName = nameOf
}

func copyUintSet(m map[uint32]struct{}) map[uint32]struct{} {
	out := make(map[uint32]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

func copyStringUintMap(m map[string]uint32) map[string]uint32 {
	out := make(map[string]uint32, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyUintStringMap(m map[uint32]string) map[uint32]string {
	out := make(map[uint32]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
