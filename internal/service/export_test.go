package service

import "time"

// SetClock pins the time source of a service built by this package.
func SetClock(svc any, now func() time.Time) {
	switch s := svc.(type) {
	case *UserServiceImpl:
		s.now = now
	case *listService:
		s.now = now
	case *taskService:
		s.now = now
	case *categoryService:
		s.now = now
	case *analyticsService:
		s.now = now
	default:
		panic("SetClock: unsupported service type")
	}
}
