package configs

// Configurable is a typed config value looked up by its cue path.
type Configurable interface {
	ConfigExpr() string
}

// Lookup decodes the first value at the path named by T.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
