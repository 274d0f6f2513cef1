package config

import "os"

// Environment supplies the process context resolution depends on: the home
// directory and an environment-variable lookup. Passing it explicitly keeps
// the engine pure — tests inject a fake home and variable set instead of
// patching process globals.
type Environment struct {
	Home      string
	LookupEnv func(key string) (string, bool)
}

// OSEnvironment returns the Environment backed by the real process state.
func OSEnvironment() Environment {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Environment{
		Home:      home,
		LookupEnv: os.LookupEnv,
	}
}

// Getenv returns the value of key, or "" if unset.
func (e Environment) Getenv(key string) string {
	if e.LookupEnv == nil {
		return ""
	}
	v, _ := e.LookupEnv(key)
	return v
}
