package testcmd

import "github.com/uranusjr/pythonup/pkg/store"

type Case struct {
	Name string
	Args []string
	Exit int

	// Store is the registry fixture the command runs against.
	// Leaving it nil runs the command against an empty store.
	Store store.Store
}
