package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/itsmikesebringyo/ff-app/config"
	"github.com/itsmikesebringyo/ff-app/controller"
	"github.com/itsmikesebringyo/ff-app/db"
	"github.com/itsmikesebringyo/ff-app/scheduler"
	"github.com/itsmikesebringyo/ff-app/sleeper"
	"github.com/itsmikesebringyo/ff-app/web"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	clock := clock.New()
	db, err := db.New(context.Background(), cfg.Postgres.ConnString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}
	defer db.Close()

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	ctrl, err := controller.New(clock, sleeperClient, db, cfg.League.ID, cfg.League.Season)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Server.Port, cfg.Server.AdminKey, cfg.League.Season, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	sched, err := scheduler.New(ctrl)
	if err != nil {
		log.Fatalf("error creating scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("error starting scheduler: %v", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("error stopping scheduler: %v", err)
		}
	}()

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

	// The live score loop. It stays quiet until the polling switch is on
	// and games are being played.
	wg.Add(1)
	go ctrl.RunLivePolling(shutdown, wg)

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
