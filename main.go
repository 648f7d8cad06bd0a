package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-server/api"
)

func main() {

	fs := flag.NewFlagSet("geo-server", flag.ExitOnError)
	var (
		listen        = fs.String("listen", ":8888", "listen address")
		logLevel      = fs.String("log-level", "info", "trace, debug, info, warn or error")
		statsInterval = fs.Uint64("stats-interval", 300, "seconds between request statistics, 0 to disable")
		cpuprofile    = fs.Bool("cpuprofile", false, "write a cpu profile on interrupt")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix()); err != nil {
		log.Fatal(err)
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Unknown log level '%s'", *logLevel)
	}
	log.SetLevel(level)

	if *cpuprofile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	router := api.InitServer(api.InitStats(*statsInterval))

	accessLog := log.StandardLogger().WriterLevel(log.DebugLevel)
	defer accessLog.Close()

	h := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)(handlers.CombinedLoggingHandler(accessLog, router))

	log.Infof("Start server on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, h))
}
