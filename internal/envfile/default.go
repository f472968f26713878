package envfile

// std is the process-wide store behind the package-level functions.
var std = New()

// Default returns the process-wide store.
func Default() *Store { return std }

// Load appends the declarations in path to the default store.
func Load(path string) error { return std.Load(path) }

// Get looks key up in the default store.
func Get(key string) (string, bool) { return std.Get(key) }

// Entries returns the default store's entries in load order.
func Entries() []Entry { return std.Entries() }

// Release empties the default store.
func Release() { std.Release() }
