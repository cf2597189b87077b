package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/fosdem/trisurface/lib/config"
	tslog "github.com/fosdem/trisurface/lib/log"
	"github.com/fosdem/trisurface/lib/surface"
	"github.com/fosdem/trisurface/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPtr := flag.String("config", "", "Config file, defaults are used when empty")
	geometryPtr := flag.String("geometry", "", "Override the geometry mode (implicit or explicit)")
	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		var err error
		cfg, err = config.Parse(*configPtr)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *geometryPtr != "" {
		mode, err := surface.ParseGeometryMode(*geometryPtr)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Geometry.GeometryMode = mode
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	tslog.Setup(level)

	viewer.MakeWindowAndRun(cfg)
}
