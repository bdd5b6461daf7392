package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/itsmikesebringyo/ff-app/controller"
)

type Scheduler struct {
	s    gocron.Scheduler
	ctrl controller.C
}

func New(ctrl controller.C) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		log.Printf("failed to load location, using local time: %v", err)
		location = time.Local
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:    s,
		ctrl: ctrl,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Refresh the player directory daily, early in the morning.
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(6, 0, 0))),
		gocron.NewTask(s.refreshPlayers),
	)
	if err != nil {
		return fmt.Errorf("failed to create player refresh job: %w", err)
	}

	// Finalize the completed week on Tuesday morning, after the Monday
	// night game has settled, and rerun the playoff simulation on the
	// fresh standings.
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 0, 0))),
		gocron.NewTask(s.finalizeWeek),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly finalize job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshPlayers() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.ctrl.UpdatePlayers(ctx); err != nil {
		log.Printf("scheduled player refresh failed: %v", err)
	}
}

func (s *Scheduler) finalizeWeek() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.ctrl.RefreshWeek(ctx, 0); err != nil {
		log.Printf("scheduled week finalize failed: %v", err)
		return
	}
	if _, err := s.ctrl.CalculatePlayoffOdds(ctx); err != nil {
		log.Printf("scheduled playoff simulation failed: %v", err)
	}
}
