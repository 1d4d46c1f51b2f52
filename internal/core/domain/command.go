package domain

// Command is an external process invocation.
type Command struct {
	Argv       []string
	WorkingDir string
	Env        map[string]string
}

// Name returns the executable of the command.
func (c *Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}
