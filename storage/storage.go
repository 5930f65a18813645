package storage

import (
	planner "github.com/danielkim-905/schedule-planner"
)

type Saver interface {
	SaveEntries(...planner.Entry) error
}

type Loader interface {
	LoadEntries(...string) (planner.Schedule, error)
}

type Clearer interface {
	Clear() error
}
