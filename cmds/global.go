package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

// Positional returns the global executor's positional argument list.
func Positional() *[]string {
	return GlobalExecutor.Positional()
}
