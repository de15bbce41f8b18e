/*
dungeon-sprites is a small editor for cutting named sprites out of a
grid-based texture atlas.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/dungeon-sprites/editor"
	"github.com/spaghettifunk/dungeon-sprites/engine"
	"github.com/spaghettifunk/dungeon-sprites/engine/core"
)

func main() {
	configPath := flag.String("config", "editor.toml", "path to the editor configuration")
	flag.Parse()

	config, err := engine.LoadApplicationConfig(*configPath)
	if err != nil {
		core.LogFatal("%s", err)
	}

	ed := editor.NewEditor(config)

	engine, err := engine.New(ed.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := engine.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop the loop; the main goroutine does the shutdown
	go func() {
		<-sigCh
		engine.Stop()
	}()

	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
