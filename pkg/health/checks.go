package health

import (
	"context"
	"time"
)

// Alive always passes.
func Alive() CheckFunc {
	return func() Check {
		return Check{Name: "process", Status: StatusHealthy}
	}
}

// GraphCheck reports the size of the served graph. An empty graph is
// degraded: the server answers but every query is trivial.
func GraphCheck(size func() (people, friendships int)) CheckFunc {
	return func() Check {
		people, friendships := size()
		check := Check{
			Name: "graph",
			Details: map[string]any{
				"people":      people,
				"friendships": friendships,
			},
			Status: StatusHealthy,
		}
		if people == 0 {
			check.Status = StatusDegraded
			check.Message = "graph is empty"
		}
		return check
	}
}

// PingCheck runs ping with timeout, e.g. against the record database.
func PingCheck(name string, timeout time.Duration, ping func(context.Context) error) CheckFunc {
	return func() Check {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		check := Check{Name: name, Status: StatusHealthy, Message: "Connected"}
		if err := ping(ctx); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}
		return check
	}
}

// EventsCheck reports dropped mutation events. Any drop is degraded.
func EventsCheck(dropped func() uint64) CheckFunc {
	return func() Check {
		n := dropped()
		check := Check{
			Name:    "events",
			Status:  StatusHealthy,
			Details: map[string]any{"dropped": n},
		}
		if n > 0 {
			check.Status = StatusDegraded
			check.Message = "subscribers are missing events"
		}
		return check
	}
}
