// File: utils/errors.go
package utils

import "errors"

// Usage is printed when the positional arguments are wrong.
const Usage = "Usage: SleepingBarber <Num # of Customers> <Num # of Chairs> <Random Seed>"

var (
	ErrUsage            = errors.New("wrong arguments")
	ErrBadSeed          = errors.New("invalid random seed")
	ErrNoCustomers      = errors.New("at least one customer is required")
	ErrTooManyCustomers = errors.New("too many customers")
	ErrNoChairs         = errors.New("the waiting room needs at least one chair")
	ErrBadEnv           = errors.New("invalid environment setting")
)
