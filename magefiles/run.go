//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the editor with editor.toml from the repository root.
func (Run) Editor() error {
	fmt.Println("Run editor...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "editor.toml"), withEnv("CGO_ENABLED=1"), withStream()); err != nil {
		return err
	}
	return nil
}
