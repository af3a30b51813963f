package color

// Env lookups are injected so the tests do not touch the process environment.
var (
	AllowedWith = allowed
	ForcedWith  = forced
)
