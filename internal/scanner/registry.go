package scanner

// safeNames is the subset of categories that smart clean may touch:
// regenerable caches and genuinely disposable files only. Everything
// else needs a human looking at the list first.
var safeNames = map[string]bool{
	"system-caches": true,
	"app-logs":      true,
	"browser-caches": true,
	"ds-store":       true,
	"trash":          true,
	"empty-folders":  true,
	"screenshots":    true,
}

// All returns every enabled cleaner in presentation order.
func All(opts Options) []Cleaner {
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	dup := NewDuplicateFinder(opts.DuplicateRoots)
	if opts.DuplicateMinBytes > 0 {
		dup.minSize = opts.DuplicateMinBytes
	}
	if opts.DuplicateMaxBytes > 0 {
		dup.maxSize = opts.DuplicateMaxBytes
	}

	all := []Cleaner{
		NewSystemCaches(),
		NewAppLogs(),
		NewBrowserCaches(),
		NewXcodeDerivedData(),
		NewXcodeDeviceSupport(),
		NewXcodeArchives(),
		NewCoreSimulator(),
		NewHomebrewCache(),
		NewPackageManagerCaches(),
		NewTrash(),
		NewDsStore(opts.Root),
		NewLargeFiles(opts.LargeFileMinBytes, opts.Root),
		dup,
		NewEmptyFolders(),
		NewScreenshots(),
		NewOldFiles(),
		NewBrokenSymlinks(),
		NewPrivacy(),
	}

	if len(disabled) == 0 {
		return all
	}
	enabled := all[:0]
	for _, c := range all {
		if !disabled[c.Name()] {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

// Find looks a cleaner up by name.
func Find(name string, opts Options) (Cleaner, bool) {
	for _, c := range All(opts) {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names lists every category name in presentation order.
func Names() []string {
	all := All(Options{})
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
	}
	return names
}

// IsSafe reports whether a category is in the smart-clean subset.
func IsSafe(name string) bool {
	return safeNames[name]
}

// SafeCategories lists the smart-clean subset in presentation order.
func SafeCategories() []string {
	var names []string
	for _, name := range Names() {
		if safeNames[name] {
			names = append(names, name)
		}
	}
	return names
}

// ReportOnly reports whether a category never deletes anything.
func ReportOnly(name string) bool {
	return name == "large-files"
}
