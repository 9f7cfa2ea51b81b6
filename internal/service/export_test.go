package service

import "github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"

func (s *sessionService) SetScheduler(scheduler pickup.Scheduler) {
	s.scheduler = scheduler
}
