package env

const (
	DefaultInputPath  = "newBooks.txt"
	DefaultOutputPath = "libraryInventory.txt"
)

type Env struct {
	InputPath  string
	OutputPath string
}

var env = Env{
	InputPath:  DefaultInputPath,
	OutputPath: DefaultOutputPath,
}

// GetEnv returns the fixed file locations. Neither flags nor environment variables change them.
func GetEnv() Env {
	return env
}
