package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/esleague/ESRace/config"
	"github.com/esleague/ESRace/controller"
	"github.com/esleague/ESRace/metrics"
	"github.com/esleague/ESRace/vrace"
	"github.com/esleague/ESRace/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	eventsFile := os.Getenv("EVENTS_FILE")
	if eventsFile == "" {
		eventsFile = "events.json"
	}

	events, err := config.LoadEvents(eventsFile)
	if err != nil {
		log.Fatalf("error loading events: %v", err)
	}

	metrics.Register()

	vraceURL := os.Getenv("VRACE_URL")
	if vraceURL == "" {
		vraceURL = vrace.VraceURL
	}

	clock := clock.New()
	vraceClient, err := vrace.NewWithURL(vraceURL)
	if err != nil {
		log.Fatalf("error creating vrace client: %v", err)
	}

	ctrl, err := controller.New(clock, vraceClient, events)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, clock)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
