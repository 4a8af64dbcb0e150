package classfile

// RequiresEntry is one entry of a Module attribute's requires table.
type RequiresEntry struct {
	Module  CPIndex[*ModuleInfo]
	Flags   AccessFlags
	Version CPIndex[*Utf8Info] // zero: no version recorded
}

// ExportsEntry is one entry of a Module attribute's exports table. An empty
// To means the package is exported unconditionally.
type ExportsEntry struct {
	Package CPIndex[*PackageInfo]
	Flags   AccessFlags
	To      []CPIndex[*ModuleInfo]
}

// OpensEntry has the same shape as ExportsEntry, for the opens table.
type OpensEntry struct {
	Package CPIndex[*PackageInfo]
	Flags   AccessFlags
	To      []CPIndex[*ModuleInfo]
}

// ProvidesEntry is one entry of a Module attribute's provides table.
type ProvidesEntry struct {
	Service CPIndex[*ClassInfo]
	With    []CPIndex[*ClassInfo]
}

// ModuleAttribute is the decoded form of the Module attribute. Whether
// Requires must contain an entry pointing at java.base (unless this module
// is java.base itself) is left unenforced, per spec.
type ModuleAttribute struct {
	Name    CPIndex[*ModuleInfo]
	Flags   AccessFlags
	Version CPIndex[*Utf8Info]

	Requires []RequiresEntry
	Exports  []ExportsEntry
	Opens    []OpensEntry
	Uses     []CPIndex[*ClassInfo]
	Provides []ProvidesEntry
}

func parseModule(c *cursor) *ModuleAttribute {
	name := CPIndex[*ModuleInfo](c.MustReadU16())
	flags := AccessFlags(c.MustReadU16())
	version := CPIndex[*Utf8Info](c.MustReadU16())

	reqCount := c.MustReadU16()
	requires := make([]RequiresEntry, reqCount)
	for i := range requires {
		requires[i] = RequiresEntry{
			Module:  CPIndex[*ModuleInfo](c.MustReadU16()),
			Flags:   AccessFlags(c.MustReadU16()),
			Version: CPIndex[*Utf8Info](c.MustReadU16()),
		}
	}

	exportsCount := c.MustReadU16()
	exports := make([]ExportsEntry, exportsCount)
	for i := range exports {
		pkg := CPIndex[*PackageInfo](c.MustReadU16())
		flags := AccessFlags(c.MustReadU16())
		toCount := c.MustReadU16()
		to := make([]CPIndex[*ModuleInfo], toCount)
		for j := range to {
			to[j] = CPIndex[*ModuleInfo](c.MustReadU16())
		}
		exports[i] = ExportsEntry{Package: pkg, Flags: flags, To: to}
	}

	opensCount := c.MustReadU16()
	opens := make([]OpensEntry, opensCount)
	for i := range opens {
		pkg := CPIndex[*PackageInfo](c.MustReadU16())
		flags := AccessFlags(c.MustReadU16())
		toCount := c.MustReadU16()
		to := make([]CPIndex[*ModuleInfo], toCount)
		for j := range to {
			to[j] = CPIndex[*ModuleInfo](c.MustReadU16())
		}
		opens[i] = OpensEntry{Package: pkg, Flags: flags, To: to}
	}

	usesCount := c.MustReadU16()
	uses := make([]CPIndex[*ClassInfo], usesCount)
	for i := range uses {
		uses[i] = CPIndex[*ClassInfo](c.MustReadU16())
	}

	providesCount := c.MustReadU16()
	provides := make([]ProvidesEntry, providesCount)
	for i := range provides {
		service := CPIndex[*ClassInfo](c.MustReadU16())
		withCount := c.MustReadU16()
		with := make([]CPIndex[*ClassInfo], withCount)
		for j := range with {
			with[j] = CPIndex[*ClassInfo](c.MustReadU16())
		}
		provides[i] = ProvidesEntry{Service: service, With: with}
	}

	return &ModuleAttribute{
		Name:     name,
		Flags:    flags,
		Version:  version,
		Requires: requires,
		Exports:  exports,
		Opens:    opens,
		Uses:     uses,
		Provides: provides,
	}
}
